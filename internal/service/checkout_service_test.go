package service

import (
	"context"
	"testing"
	"time"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/entity"
	"freshsprout-be/pkg/cart"
	"freshsprout-be/pkg/gift"
	"freshsprout-be/pkg/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openWindowConfig returns a weekly cycle whose order window is open right
// now. The blackout is about a day and a half, so shifting the cutoff
// weekday always finds an open configuration.
func openWindowConfig() schedule.Config {
	now := time.Now()
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		cfg := schedule.Config{
			OrderCutoff:           schedule.Cutoff{Weekday: wd, Hour: 12},
			DeliveryWeekday:       (wd + 1) % 7,
			FreeShippingThreshold: 35,
			DeliveryFee:           4,
			Region:                "metro",
			Currency:              "usd",
		}
		if cfg.WithinOrderWindow(now) {
			return cfg
		}
	}
	return schedule.Config{}
}

// closedWindowConfig puts today inside the blackout.
func closedWindowConfig() schedule.Config {
	wd := time.Now().UTC().Weekday()
	return schedule.Config{
		OrderCutoff:     schedule.Cutoff{Weekday: wd},
		DeliveryWeekday: (wd + 1) % 7,
		Region:          "metro",
		Currency:        "usd",
	}
}

func seedCheckoutCart(t *testing.T, store cart.Store, token string) {
	t.Helper()
	c := &cart.Cart{}
	c.AddItem("sunflower-shoots", "Sunflower Shoots", 6.50, 2)
	require.NoError(t, store.Save(context.Background(), token, c))
}

func subscriptionGiftRequest(token, giftType string) *dto.CheckoutRequest {
	return &dto.CheckoutRequest{
		CartToken:  token,
		Mode:       "subscription",
		GiftType:   giftType,
		SuccessURL: "https://shop.example.com/thanks",
		CancelURL:  "https://shop.example.com/cart",
	}
}

func TestCreateSessionRejectedWhenWindowClosed(t *testing.T) {
	uow := newMemUow()
	store := cart.NewMemoryStore()
	seedCheckoutCart(t, store, "tok-closed")

	svc := NewCheckoutService(&memUowFactory{uow: uow}, store, closedWindowConfig())
	_, err := svc.CreateSession(context.Background(), uuid.New(), &dto.CheckoutRequest{
		CartToken:  "tok-closed",
		Mode:       "payment",
		SuccessURL: "https://shop.example.com/thanks",
		CancelURL:  "https://shop.example.com/cart",
	})
	assert.ErrorIs(t, err, schedule.ErrOrderWindowClosed)
}

func TestCreateSessionDefaultGiftRequiresRoutableCenter(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow() // no senior centers

	user := &entity.User{Id: uuid.New(), Email: "jo@example.com", GiftOneEnabled: true}
	require.NoError(t, uow.users.Create(ctx, user))

	store := cart.NewMemoryStore()
	seedCheckoutCart(t, store, "tok-gift")

	svc := NewCheckoutService(&memUowFactory{uow: uow}, store, openWindowConfig())
	_, err := svc.CreateSession(ctx, user.Id, subscriptionGiftRequest("tok-gift", "default_center"))
	assert.ErrorIs(t, err, gift.ErrNoActiveCenter, "must refuse before payment when no center can receive the gift")
}

func TestCreateSessionDefaultGiftIgnoresCentersOutsideRegion(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow()
	uow.gifts.centers = append(uow.gifts.centers, entity.SeniorCenter{
		Id:        uuid.New(),
		Name:      "Hillside Commons",
		Region:    "coastal",
		IsActive:  true,
		CreatedAt: time.Now(),
	})

	user := &entity.User{Id: uuid.New(), Email: "jo@example.com", GiftOneEnabled: true}
	require.NoError(t, uow.users.Create(ctx, user))

	store := cart.NewMemoryStore()
	seedCheckoutCart(t, store, "tok-region")

	svc := NewCheckoutService(&memUowFactory{uow: uow}, store, openWindowConfig())
	_, err := svc.CreateSession(ctx, user.Id, subscriptionGiftRequest("tok-region", "default_center"))
	assert.ErrorIs(t, err, gift.ErrNoActiveCenter)
}

func TestCreateSessionCustomGiftRequiresNameAndAddress(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow()

	user := &entity.User{Id: uuid.New(), Email: "jo@example.com", GiftOneEnabled: true}
	require.NoError(t, uow.users.Create(ctx, user))

	store := cart.NewMemoryStore()
	seedCheckoutCart(t, store, "tok-custom")

	svc := NewCheckoutService(&memUowFactory{uow: uow}, store, openWindowConfig())
	req := subscriptionGiftRequest("tok-custom", "custom_center")
	req.GiftCustomName = "Riverbend Seniors"
	_, err := svc.CreateSession(ctx, user.Id, req)
	assert.ErrorIs(t, err, gift.ErrCustomIncomplete)
}

func TestCreateSessionGiftRequiresOptIn(t *testing.T) {
	ctx := context.Background()
	uow := newMemUow()

	user := &entity.User{Id: uuid.New(), Email: "jo@example.com"}
	require.NoError(t, uow.users.Create(ctx, user))

	store := cart.NewMemoryStore()
	seedCheckoutCart(t, store, "tok-optin")

	svc := NewCheckoutService(&memUowFactory{uow: uow}, store, openWindowConfig())
	_, err := svc.CreateSession(ctx, user.Id, subscriptionGiftRequest("tok-optin", "default_center"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gift-one is not enabled")
}
