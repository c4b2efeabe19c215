package punch

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Punch struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	UserID    uuid.UUID      `gorm:"column:user_id;type:uuid;not null;index"`
	ProjectID *uuid.UUID     `gorm:"column:project_id;type:uuid;index"`
	From      time.Time      `gorm:"column:from;type:timestamptz;not null"`
	To        time.Time      `gorm:"column:to;type:timestamptz;not null"`
	ExtraHour bool           `gorm:"column:extra_hour;not null;default:false"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
	User      *UserRef       `gorm:"foreignKey:UserID;references:ID"`
}

func (Punch) TableName() string {
	return "punches"
}

type UserRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (UserRef) TableName() string {
	return "users"
}

// Range is the punch's stored interval in resolver form.
func (p *Punch) Range() TimeRange {
	return TimeRange{From: p.From.UTC(), To: p.To.UTC()}
}
