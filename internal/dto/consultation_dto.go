package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookConsultationRequest struct {
	LawyerName   string    `json:"lawyer_name" validate:"required"`
	PracticeArea string    `json:"practice_area" validate:"required"`
	ScheduledAt  time.Time `json:"scheduled_at" validate:"required"`
	Notes        string    `json:"notes"`
}

type ConsultationResponse struct {
	Id           uuid.UUID `json:"id"`
	LawyerName   string    `json:"lawyer_name"`
	PracticeArea string    `json:"practice_area"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}
