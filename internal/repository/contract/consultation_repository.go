package contract

import (
	"context"

	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entity.Consultation) error
	Update(ctx context.Context, consultation *entity.Consultation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Consultation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consultation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
