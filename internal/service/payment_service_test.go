package service

import (
	"context"
	"testing"

	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/repository/specification"
	"freshsprout-be/pkg/cart"
	"freshsprout-be/pkg/lifecycle"
	"freshsprout-be/pkg/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPaymentService(uow *memUow, store cart.Store) (IPaymentService, *capturePublisher) {
	pub := &capturePublisher{}
	cfg := schedule.Config{Region: "metro", Currency: "usd"}
	return NewPaymentService(&memUowFactory{uow: uow}, store, cfg, pub, nil, nopLogger{}), pub
}

func seedSubscriptionOrder(t *testing.T, uow *memUow, userId *uuid.UUID, subId string, status entity.OrderStatus) *entity.Order {
	t.Helper()
	order := &entity.Order{
		Id:                   uuid.New(),
		UserId:               userId,
		Type:                 entity.OrderTypeSubscription,
		Status:               status,
		StripeSessionId:      "cs_" + subId,
		StripeSubscriptionId: &subId,
		Currency:             "usd",
	}
	require.NoError(t, uow.orders.Create(context.Background(), order))
	return order
}

func TestSubscriptionActivationSetsActiveOrder(t *testing.T) {
	ctx := context.Background()

	for _, subStatus := range []string{"active", "trialing"} {
		t.Run(subStatus, func(t *testing.T) {
			uow := newMemUow()

			staleOrderId := uuid.New()
			user := &entity.User{Id: uuid.New(), Email: "jo@example.com", ActiveOrderId: &staleOrderId}
			require.NoError(t, uow.users.Create(ctx, user))

			subId := "sub_" + subStatus
			order := seedSubscriptionOrder(t, uow, &user.Id, subId, entity.OrderStatusPending)

			svc, _ := newTestPaymentService(uow, cart.NewMemoryStore())
			err := svc.HandleEvent(ctx, lifecycle.PaymentEvent{
				Type:               lifecycle.EventSubscriptionUpdated,
				SubscriptionId:     subId,
				SubscriptionStatus: subStatus,
			})
			require.NoError(t, err)

			saved, err := uow.orders.FindOne(ctx, specification.ByStripeSubscription{SubscriptionID: subId})
			require.NoError(t, err)
			require.NotNil(t, saved)
			assert.Equal(t, entity.OrderStatusPaid, saved.Status)

			savedUser, err := uow.users.FindOne(ctx, specification.ByID{ID: user.Id})
			require.NoError(t, err)
			require.NotNil(t, savedUser.ActiveOrderId)
			assert.Equal(t, order.Id, *savedUser.ActiveOrderId, "activation must repoint the user at this order")
			assert.Equal(t, 1, uow.commits)
		})
	}
}

func TestSubscriptionActivationCorrectsPointerWhenAlreadyPaid(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow()

	otherOrderId := uuid.New()
	user := &entity.User{Id: uuid.New(), Email: "jo@example.com", ActiveOrderId: &otherOrderId}
	require.NoError(t, uow.users.Create(ctx, user))

	order := seedSubscriptionOrder(t, uow, &user.Id, "sub_repoint", entity.OrderStatusPaid)

	svc, _ := newTestPaymentService(uow, cart.NewMemoryStore())
	err := svc.HandleEvent(ctx, lifecycle.PaymentEvent{
		Type:               lifecycle.EventSubscriptionUpdated,
		SubscriptionId:     "sub_repoint",
		SubscriptionStatus: "active",
	})
	require.NoError(t, err)

	savedUser, err := uow.users.FindOne(ctx, specification.ByID{ID: user.Id})
	require.NoError(t, err)
	require.NotNil(t, savedUser.ActiveOrderId)
	assert.Equal(t, order.Id, *savedUser.ActiveOrderId)
}

func TestSubscriptionCreatedLinksUserByCustomerId(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow()

	cid := "cus_42"
	user := &entity.User{Id: uuid.New(), Email: "jo@example.com", StripeCustomerId: &cid}
	require.NoError(t, uow.users.Create(ctx, user))

	// Guest-shaped order: checkout metadata carried no user id.
	order := seedSubscriptionOrder(t, uow, nil, "sub_link", entity.OrderStatusPaid)

	svc, _ := newTestPaymentService(uow, cart.NewMemoryStore())
	err := svc.HandleEvent(ctx, lifecycle.PaymentEvent{
		Type:           lifecycle.EventSubscriptionCreated,
		SubscriptionId: "sub_link",
		CustomerId:     cid,
	})
	require.NoError(t, err)

	saved, err := uow.orders.FindOne(ctx, specification.ByID{ID: order.Id})
	require.NoError(t, err)
	require.NotNil(t, saved.UserId)
	assert.Equal(t, user.Id, *saved.UserId)
}

func TestSubscriptionDeletedClearsActiveOrder(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow()

	user := &entity.User{Id: uuid.New(), Email: "jo@example.com"}
	require.NoError(t, uow.users.Create(ctx, user))
	order := seedSubscriptionOrder(t, uow, &user.Id, "sub_gone", entity.OrderStatusPaid)
	user.ActiveOrderId = &order.Id
	require.NoError(t, uow.users.Update(ctx, user))

	svc, _ := newTestPaymentService(uow, cart.NewMemoryStore())
	err := svc.HandleEvent(ctx, lifecycle.PaymentEvent{
		Type:               lifecycle.EventSubscriptionDeleted,
		SubscriptionId:     "sub_gone",
		SubscriptionStatus: "canceled",
	})
	require.NoError(t, err)

	saved, err := uow.orders.FindOne(ctx, specification.ByID{ID: order.Id})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, saved.Status)

	savedUser, err := uow.users.FindOne(ctx, specification.ByID{ID: user.Id})
	require.NoError(t, err)
	assert.Nil(t, savedUser.ActiveOrderId)
}

func TestCheckoutGiftWithoutCenterStillCreatesOrder(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow() // no senior centers seeded

	user := &entity.User{Id: uuid.New(), Email: "jo@example.com", GiftOneEnabled: true}
	require.NoError(t, uow.users.Create(ctx, user))

	store := cart.NewMemoryStore()
	c := &cart.Cart{}
	c.AddItem("sunflower-shoots", "Sunflower Shoots", 6.50, 2)
	require.NoError(t, store.Save(ctx, "tok-gift", c))

	svc, pub := newTestPaymentService(uow, store)
	err := svc.HandleEvent(ctx, lifecycle.PaymentEvent{
		Type:           lifecycle.EventCheckoutCompleted,
		SessionId:      "cs_gift",
		SubscriptionId: "sub_gift",
		Mode:           lifecycle.ModeSubscription,
		AmountTotal:    17.00,
		Currency:       "usd",
		Metadata: map[string]string{
			"cart_token":   "tok-gift",
			"subtotal":     "13.00",
			"shipping_fee": "4.00",
			"user_id":      user.Id.String(),
			"gift_type":    "default_center",
		},
	})
	require.NoError(t, err, "a paid checkout must settle even when no center is routable")

	order, err := uow.orders.FindOne(ctx, specification.ByStripeSession{SessionID: "cs_gift"})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)

	deliveries, err := uow.gifts.FindAllDeliveries(ctx)
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	assert.Equal(t, order.Id, deliveries[0].OrderId)
	assert.Equal(t, entity.GiftStatusPending, deliveries[0].Status)
	assert.Nil(t, deliveries[0].SeniorCenterId, "unroutable gift stays unassigned for admin follow-up")

	assert.Len(t, pub.payloads, 1, "order confirmation should still be queued")
}
