package service

import (
	"context"
	"errors"
	"time"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/repository/specification"
	"freshsprout-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	SetGiftOne(ctx context.Context, userId uuid.UUID, enabled bool) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	return &dto.UserProfileResponse{
		Id:             user.Id,
		Email:          user.Email,
		FullName:       user.FullName,
		Role:           user.Role,
		GiftOneEnabled: user.GiftOneEnabled,
		ActiveOrderId:  user.ActiveOrderId,
		CreatedAt:      user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	user.FullName = req.FullName
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return s.Profile(ctx, userId)
}

func (s *userService) SetGiftOne(ctx context.Context, userId uuid.UUID, enabled bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	user.GiftOneEnabled = enabled
	user.UpdatedAt = time.Now()

	return uow.UserRepository().Update(ctx, user)
}
