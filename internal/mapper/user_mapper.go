package mapper

import (
	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:               u.Id,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		FullName:         u.FullName,
		Role:             u.Role,
		StripeCustomerId: u.StripeCustomerId,
		ActiveOrderId:    u.ActiveOrderId,
		GiftOneEnabled:   u.GiftOneEnabled,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:               u.Id,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		FullName:         u.FullName,
		Role:             u.Role,
		StripeCustomerId: u.StripeCustomerId,
		ActiveOrderId:    u.ActiveOrderId,
		GiftOneEnabled:   u.GiftOneEnabled,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
