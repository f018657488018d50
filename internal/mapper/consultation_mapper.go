package mapper

import (
	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/model"
)

type ConsultationMapper struct{}

func NewConsultationMapper() *ConsultationMapper {
	return &ConsultationMapper{}
}

func (m *ConsultationMapper) ToEntity(c *model.Consultation) *entity.Consultation {
	if c == nil {
		return nil
	}
	return &entity.Consultation{
		Id:           c.Id,
		UserId:       c.UserId,
		LawyerName:   c.LawyerName,
		PracticeArea: c.PracticeArea,
		ScheduledAt:  c.ScheduledAt,
		Status:       c.Status,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m *ConsultationMapper) ToModel(c *entity.Consultation) *model.Consultation {
	if c == nil {
		return nil
	}
	return &model.Consultation{
		Id:           c.Id,
		UserId:       c.UserId,
		LawyerName:   c.LawyerName,
		PracticeArea: c.PracticeArea,
		ScheduledAt:  c.ScheduledAt,
		Status:       c.Status,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
