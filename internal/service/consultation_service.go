package service

import (
	"context"
	"time"

	"legal-assist-be/internal/dto"
	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/pkg/logger"
	"legal-assist-be/internal/repository/specification"
	"legal-assist-be/internal/repository/unitofwork"
	"legal-assist-be/pkg/events"

	"github.com/google/uuid"
)

type IConsultationService interface {
	Book(ctx context.Context, userId uuid.UUID, req *dto.BookConsultationRequest) (*dto.ConsultationResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ConsultationResponse, error)
	Cancel(ctx context.Context, userId uuid.UUID, consultationId uuid.UUID) error
}

type consultationService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewConsultationService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IConsultationService {
	return &consultationService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *consultationService) Book(ctx context.Context, userId uuid.UUID, req *dto.BookConsultationRequest) (*dto.ConsultationResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	consultation := &entity.Consultation{
		Id:           uuid.New(),
		UserId:       userId,
		LawyerName:   req.LawyerName,
		PracticeArea: req.PracticeArea,
		ScheduledAt:  req.ScheduledAt,
		Status:       entity.ConsultationStatusPending,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.ConsultationRepository().Create(ctx, consultation); err != nil {
		return nil, err
	}

	// Email and push delivery run off the bus; a publish failure must not
	// fail the booking.
	if err := s.publisher.Publish(events.TopicConsultationBooked, events.ConsultationBooked{
		ConsultationId: consultation.Id,
		UserId:         userId,
		LawyerName:     consultation.LawyerName,
		PracticeArea:   consultation.PracticeArea,
		ScheduledAt:    consultation.ScheduledAt,
	}); err != nil {
		s.logger.Warn("ConsultationService", "Failed to publish booking event", map[string]interface{}{
			"consultation_id": consultation.Id,
			"error":           err.Error(),
		})
	}

	return toConsultationResponse(consultation), nil
}

func (s *consultationService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ConsultationResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultations, err := uow.ConsultationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "scheduled_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ConsultationResponse, 0, len(consultations))
	for _, c := range consultations {
		response = append(response, toConsultationResponse(c))
	}
	return response, nil
}

func (s *consultationService) Cancel(ctx context.Context, userId uuid.UUID, consultationId uuid.UUID) error {
	if userId == uuid.Nil {
		return ErrUnauthenticated
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultation, err := uow.ConsultationRepository().FindOne(ctx,
		specification.ByID{ID: consultationId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if consultation == nil {
		return ErrNotFound
	}

	consultation.Status = entity.ConsultationStatusCancelled
	consultation.UpdatedAt = time.Now()

	if err := uow.ConsultationRepository().Update(ctx, consultation); err != nil {
		return err
	}

	if err := s.publisher.Publish(events.TopicConsultationChanged, events.ConsultationChanged{
		ConsultationId: consultation.Id,
		UserId:         userId,
		Status:         consultation.Status,
	}); err != nil {
		s.logger.Warn("ConsultationService", "Failed to publish cancellation event", map[string]interface{}{
			"consultation_id": consultation.Id,
			"error":           err.Error(),
		})
	}

	return nil
}

func toConsultationResponse(c *entity.Consultation) *dto.ConsultationResponse {
	return &dto.ConsultationResponse{
		Id:           c.Id,
		LawyerName:   c.LawyerName,
		PracticeArea: c.PracticeArea,
		ScheduledAt:  c.ScheduledAt,
		Status:       c.Status,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
	}
}
