package service

import (
	"context"
	"errors"
	"testing"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow()
	require.NoError(t, uow.users.Create(ctx, &entity.User{Id: uuid.New(), Email: "jo@example.com"}))

	svc := NewAuthService(&memUowFactory{uow: uow})
	_, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Jo Delgado",
		Email:    "jo@example.com",
		Password: "sprouts-and-shoots",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	count, _ := uow.users.Count(ctx)
	assert.Equal(t, int64(1), count)
}

func TestRegisterLookupFailurePropagates(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow()
	dbErr := errors.New("connection refused")
	uow.users.findErr = dbErr

	svc := NewAuthService(&memUowFactory{uow: uow})
	_, err := svc.Register(ctx, &dto.RegisterRequest{
		FullName: "Jo Delgado",
		Email:    "jo@example.com",
		Password: "sprouts-and-shoots",
	})
	require.ErrorIs(t, err, dbErr, "a failed duplicate check must not fall through to the insert")

	uow.users.findErr = nil
	count, _ := uow.users.Count(ctx)
	assert.Zero(t, count)
}
