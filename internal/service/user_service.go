package service

import (
	"context"
	"time"

	"legal-assist-be/internal/dto"
	"legal-assist-be/internal/locale"
	"legal-assist-be/internal/repository/specification"
	"legal-assist-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	return &dto.ProfileResponse{
		Id:                user.Id,
		Email:             user.Email,
		FullName:          user.FullName,
		Phone:             user.Phone,
		PreferredLanguage: user.PreferredLanguage,
		CreatedAt:         user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	user.FullName = req.FullName
	user.Phone = req.Phone
	if req.PreferredLanguage != "" {
		user.PreferredLanguage = locale.Normalize(req.PreferredLanguage)
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		Id:                user.Id,
		Email:             user.Email,
		FullName:          user.FullName,
		Phone:             user.Phone,
		PreferredLanguage: user.PreferredLanguage,
		CreatedAt:         user.CreatedAt,
	}, nil
}
