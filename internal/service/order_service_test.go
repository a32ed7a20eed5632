package service

import (
	"context"
	"testing"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/repository/specification"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow()

	user := &entity.User{Id: uuid.New(), Email: "jo@example.com"}
	require.NoError(t, uow.users.Create(ctx, user))

	order := &entity.Order{
		Id:              uuid.New(),
		UserId:          &user.Id,
		Type:            entity.OrderTypeOneOff,
		Status:          entity.OrderStatusPaid,
		StripeSessionId: "cs_fulfil",
		Currency:        "usd",
	}
	require.NoError(t, uow.orders.Create(ctx, order))

	svc := NewOrderService(&memUowFactory{uow: uow}, nil, nopLogger{})

	// paid cannot jump straight to shipped
	_, err := svc.UpdateStatus(ctx, &dto.UpdateOrderStatusRequest{Id: order.Id, Status: "shipped"})
	require.Error(t, err)
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fiberErr.Code)

	for _, status := range []string{"processing", "shipped", "delivered"} {
		res, err := svc.UpdateStatus(ctx, &dto.UpdateOrderStatusRequest{Id: order.Id, Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, res.Status)
	}

	saved, err := uow.orders.FindOne(ctx, specification.ByID{ID: order.Id})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, saved.Status)

	// delivered is terminal
	_, err = svc.UpdateStatus(ctx, &dto.UpdateOrderStatusRequest{Id: order.Id, Status: "cancelled"})
	require.Error(t, err)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc := NewOrderService(&memUowFactory{uow: newMemUow()}, nil, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &dto.UpdateOrderStatusRequest{Id: uuid.New(), Status: "processing"})
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}
