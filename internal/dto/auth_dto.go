package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	FullName          string `json:"full_name" validate:"required"`
	PreferredLanguage string `json:"preferred_language"`
}

type RegisterResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserId    uuid.UUID `json:"user_id"`
	FullName  string    `json:"full_name"`
}
