package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email             string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName          string         `gorm:"type:varchar(255);not null"`
	PasswordHash      *string        `gorm:"type:text"`
	Phone             string         `gorm:"type:varchar(32)"`
	PreferredLanguage string         `gorm:"type:varchar(8);default:'en'"`
	Role              string         `gorm:"type:varchar(16);not null;default:'user'"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
