package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attachment describes an uploaded file. Content is never inspected;
// only the descriptor is recorded and announced to the model.
type Attachment struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	Url  string `json:"url"`
}

// ChatMessage is one conversational turn. Immutable after creation.
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Content       string
	Language      string
	Attachments   []Attachment
	IsError       bool
	CreatedAt     time.Time
}
