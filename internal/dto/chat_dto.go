package dto

import (
	"time"

	"legal-assist-be/internal/entity"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Language string `json:"language"`
	Title    string `json:"title"`
}

type CreateSessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatTurnResponse is the wire shape of one persisted message, shared by
// the transcript endpoint and the send/upload responses.
type ChatTurnResponse struct {
	Id          uuid.UUID           `json:"id"`
	Role        string              `json:"role"`
	Content     string              `json:"content"`
	Attachments []entity.Attachment `json:"attachments,omitempty"`
	IsError     bool                `json:"is_error"`
	CreatedAt   time.Time           `json:"created_at"`
}

type SendMessageRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
	Content       string    `json:"content" validate:"required"`
}

// SendMessageResponse is shaped identically for model successes and model
// failures; failures differ only in Reply.IsError and the fallback text.
type SendMessageResponse struct {
	ChatSessionId    uuid.UUID         `json:"chat_session_id"`
	ChatSessionTitle string            `json:"chat_session_title"`
	Sent             *ChatTurnResponse `json:"sent"`
	Reply            *ChatTurnResponse `json:"reply"`
}

type UploadFileRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	Url  string `json:"url"`
}

type UploadFilesRequest struct {
	ChatSessionId uuid.UUID           `json:"chat_session_id" validate:"required"`
	Files         []UploadFileRequest `json:"files" validate:"required,min=1,dive"`
}

// UploadTurnResponse pairs one uploaded file with its assistant reply.
type UploadTurnResponse struct {
	Sent  *ChatTurnResponse `json:"sent"`
	Reply *ChatTurnResponse `json:"reply"`
}

type UploadFilesResponse struct {
	ChatSessionId uuid.UUID             `json:"chat_session_id"`
	Turns         []*UploadTurnResponse `json:"turns"`
}

type RenameSessionRequest struct {
	Title string `json:"title" validate:"required"`
}
