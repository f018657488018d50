package service

import (
	"context"
	"encoding/json"

	"legal-assist-be/internal/constant"
	"legal-assist-be/internal/pkg/logger"
	"legal-assist-be/internal/pkg/mailer"
	"legal-assist-be/internal/repository/specification"
	"legal-assist-be/internal/repository/unitofwork"
	"legal-assist-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// NotificationDelivery pushes an event to every device a user has
// connected. The websocket hub implements it.
type NotificationDelivery interface {
	Send(userId uuid.UUID, event string, payload interface{})
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the event bus: assistant replies are pushed to
// the websocket hub, consultation bookings additionally trigger a
// confirmation email.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	delivery     NotificationDelivery
	logger       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	delivery NotificationDelivery,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		uowFactory:   uowFactory,
		emailService: emailService,
		delivery:     delivery,
		logger:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	chatMessages, err := cs.pubSub.Subscribe(ctx, events.TopicChatMessageCreated)
	if err != nil {
		return err
	}
	bookings, err := cs.pubSub.Subscribe(ctx, events.TopicConsultationBooked)
	if err != nil {
		return err
	}
	changes, err := cs.pubSub.Subscribe(ctx, events.TopicConsultationChanged)
	if err != nil {
		return err
	}

	go func() {
		for msg := range chatMessages {
			cs.processChatMessage(msg)
		}
	}()
	go func() {
		for msg := range bookings {
			cs.processBooking(ctx, msg)
		}
	}()
	go func() {
		for msg := range changes {
			cs.processChange(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processChatMessage(msg *message.Message) {
	var payload events.ChatMessageCreated
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal chat event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	// User turns echo back to the sender's own client; only assistant
	// replies are worth pushing.
	if payload.Role == constant.ChatMessageRoleAssistant && cs.delivery != nil {
		cs.delivery.Send(payload.UserId, "chat.reply", payload)
	}

	msg.Ack()
}

func (cs *consumerService) processBooking(ctx context.Context, msg *message.Message) {
	var payload events.ConsultationBooked
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal booking event", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	if cs.delivery != nil {
		cs.delivery.Send(payload.UserId, "consultation.booked", payload)
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payload.UserId})
	if err != nil || user == nil {
		cs.logger.Warn("ConsumerService", "Booking email skipped, user lookup failed", map[string]interface{}{
			"user_id": payload.UserId,
		})
		msg.Ack()
		return
	}

	consultation, err := uow.ConsultationRepository().FindOne(ctx, specification.ByID{ID: payload.ConsultationId})
	if err != nil || consultation == nil {
		cs.logger.Warn("ConsumerService", "Booking email skipped, consultation lookup failed", map[string]interface{}{
			"consultation_id": payload.ConsultationId,
		})
		msg.Ack()
		return
	}

	if err := cs.emailService.SendConsultationConfirmation(user.Email, user.FullName, consultation); err != nil {
		cs.logger.Error("ConsumerService", "Failed to send confirmation email", map[string]interface{}{
			"consultation_id": payload.ConsultationId,
			"error":           err.Error(),
		})
	}

	msg.Ack()
}

func (cs *consumerService) processChange(msg *message.Message) {
	var payload events.ConsultationChanged
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal change event", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	if cs.delivery != nil {
		cs.delivery.Send(payload.UserId, "consultation.changed", payload)
	}

	msg.Ack()
}
