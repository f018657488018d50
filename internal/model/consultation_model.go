package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Consultation struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	LawyerName   string         `gorm:"type:varchar(255);not null"`
	PracticeArea string         `gorm:"type:varchar(128);not null"`
	ScheduledAt  time.Time      `gorm:"not null"`
	Status       string         `gorm:"type:varchar(16);not null;default:'pending'"`
	Notes        string         `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Consultation) TableName() string {
	return "consultations"
}
