package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleSuper    = "SUPER"
	RoleEmployee = "EMPLOYEE"

	OccupationAdministrator = "ADMINISTRATOR"
	OccupationEngineer      = "ENGINEER"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"company_id"`
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`
	Email        string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Role         string     `gorm:"type:varchar(20);not null;default:EMPLOYEE" json:"role"`
	Occupation   string     `gorm:"type:varchar(30);not null;default:ENGINEER" json:"occupation"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
