package contribution

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Contribution struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	UserID     uuid.UUID      `gorm:"column:user_id;type:uuid;not null;index"`
	Link       string         `gorm:"column:link;type:varchar(500);not null;uniqueIndex:uq_contributions_link"`
	Repository string         `gorm:"column:repository;type:varchar(255)"`
	State      State          `gorm:"column:state;type:varchar(20);not null;default:RECEIVED"`
	ReviewerID *uuid.UUID     `gorm:"column:reviewer_id;type:uuid"`
	ReviewedAt *time.Time     `gorm:"column:reviewed_at;type:timestamptz"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
	User       *UserRef       `gorm:"foreignKey:UserID;references:ID"`
}

func (Contribution) TableName() string {
	return "contributions"
}

type UserRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"column:name"`
	Occupation string    `gorm:"column:occupation"`
	IsActive   bool      `gorm:"column:is_active"`
}

func (UserRef) TableName() string {
	return "users"
}
