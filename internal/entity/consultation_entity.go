package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ConsultationStatusPending   = "pending"
	ConsultationStatusConfirmed = "confirmed"
	ConsultationStatusCancelled = "cancelled"
)

type Consultation struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	LawyerName   string
	PracticeArea string
	ScheduledAt  time.Time
	Status       string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
