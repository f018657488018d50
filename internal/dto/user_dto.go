package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	Id                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	FullName          string    `json:"full_name"`
	Phone             string    `json:"phone"`
	PreferredLanguage string    `json:"preferred_language"`
	CreatedAt         time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName          string `json:"full_name" validate:"required"`
	Phone             string `json:"phone"`
	PreferredLanguage string `json:"preferred_language"`
}
