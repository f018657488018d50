package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"
)

type User struct {
	Id                uuid.UUID
	Email             string
	FullName          string
	PasswordHash      *string
	Phone             string
	PreferredLanguage string
	Role              string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
