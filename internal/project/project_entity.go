package project

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"size:255;not null"`
	CompanyID uuid.UUID      `gorm:"type:uuid;not null"`
	ClientID  uuid.UUID      `gorm:"type:uuid;not null"`
	Client    *ProjectClient `gorm:"foreignKey:ClientID;references:ID"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type ProjectClient struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (ProjectClient) TableName() string {
	return "clients"
}
