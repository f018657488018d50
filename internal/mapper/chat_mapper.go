package mapper

import (
	"encoding/json"

	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToModel(e *entity.ChatSession) *model.ChatSession {
	if e == nil {
		return nil
	}
	return &model.ChatSession{
		Id:        e.Id,
		UserId:    e.UserId,
		Title:     e.Title,
		Language:  e.Language,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		Language:  s.Language,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToModel(e *entity.ChatMessage) *model.ChatMessage {
	if e == nil {
		return nil
	}
	attachments := datatypes.JSON("[]")
	if len(e.Attachments) > 0 {
		if raw, err := json.Marshal(e.Attachments); err == nil {
			attachments = raw
		}
	}
	return &model.ChatMessage{
		Id:            e.Id,
		ChatSessionId: e.ChatSessionId,
		Role:          e.Role,
		Content:       e.Content,
		Language:      e.Language,
		Attachments:   attachments,
		IsError:       e.IsError,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	var attachments []entity.Attachment
	if len(msg.Attachments) > 0 {
		// Corrupt attachment payloads degrade to an empty descriptor list.
		_ = json.Unmarshal(msg.Attachments, &attachments)
	}
	return &entity.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Role:          msg.Role,
		Content:       msg.Content,
		Language:      msg.Language,
		Attachments:   attachments,
		IsError:       msg.IsError,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessagesToEntities(models []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(models))
	for i, msg := range models {
		entities[i] = m.ChatMessageToEntity(msg)
	}
	return entities
}
