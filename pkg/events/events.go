// Package events defines the in-process event bus topics and payloads.
// Services publish; the consumer service subscribes and dispatches to the
// mailer and the websocket hub.
package events

import (
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const (
	TopicChatMessageCreated  = "chat.message.created"
	TopicConsultationBooked  = "consultation.booked"
	TopicConsultationChanged = "consultation.changed"
)

// ChatMessageCreated is published for every persisted chat message, user
// and assistant turns alike.
type ChatMessageCreated struct {
	MessageId     uuid.UUID `json:"message_id"`
	ChatSessionId uuid.UUID `json:"chat_session_id"`
	UserId        uuid.UUID `json:"user_id"`
	Role          string    `json:"role"`
	Content       string    `json:"content"`
	IsError       bool      `json:"is_error"`
	CreatedAt     time.Time `json:"created_at"`
}

// ConsultationBooked triggers the confirmation email and a push
// notification.
type ConsultationBooked struct {
	ConsultationId uuid.UUID `json:"consultation_id"`
	UserId         uuid.UUID `json:"user_id"`
	LawyerName     string    `json:"lawyer_name"`
	PracticeArea   string    `json:"practice_area"`
	ScheduledAt    time.Time `json:"scheduled_at"`
}

// ConsultationChanged covers cancellations and status updates.
type ConsultationChanged struct {
	ConsultationId uuid.UUID `json:"consultation_id"`
	UserId         uuid.UUID `json:"user_id"`
	Status         string    `json:"status"`
}

// NewBus builds the in-process pub/sub channel shared by publishers and
// the consumer service.
func NewBus() *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
}

// Publisher is the narrow publishing facade handed to services.
type Publisher interface {
	Publish(topic string, payload interface{}) error
}

type busPublisher struct {
	pubSub *gochannel.GoChannel
}

func NewPublisher(pubSub *gochannel.GoChannel) Publisher {
	return &busPublisher{pubSub: pubSub}
}

func (p *busPublisher) Publish(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	return p.pubSub.Publish(topic, msg)
}
