package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/repository/specification"
	"freshsprout-be/internal/repository/unitofwork"
	"freshsprout-be/pkg/cart"
	"freshsprout-be/pkg/gift"
	"freshsprout-be/pkg/schedule"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

type ICheckoutService interface {
	// CreateSession turns the caller's cart into a Stripe Checkout Session.
	// userId is uuid.Nil for guest checkouts, which only allow one-off mode.
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	DeliveryInfo(ctx context.Context, now time.Time) *dto.DeliveryInfoResponse
}

type checkoutService struct {
	uowFactory  unitofwork.RepositoryFactory
	store       cart.Store
	scheduleCfg schedule.Config
}

func NewCheckoutService(uowFactory unitofwork.RepositoryFactory, store cart.Store, scheduleCfg schedule.Config) ICheckoutService {
	return &checkoutService{
		uowFactory:  uowFactory,
		store:       store,
		scheduleCfg: scheduleCfg,
	}
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (s *checkoutService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	now := time.Now()
	if !s.scheduleCfg.WithinOrderWindow(now) {
		return nil, schedule.ErrOrderWindowClosed
	}

	c, err := s.store.Load(ctx, req.CartToken)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, cart.ErrEmptyCart
	}

	if req.Mode == "subscription" && userId == uuid.Nil {
		return nil, errors.New("subscriptions require an account")
	}

	giftType := ""
	if req.GiftType != "" {
		if req.Mode != "subscription" {
			return nil, errors.New("gift deliveries are only available on subscriptions")
		}

		uow := s.uowFactory.NewUnitOfWork(ctx)
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		if err != nil {
			return nil, err
		}
		if user == nil || !user.GiftOneEnabled {
			return nil, errors.New("gift-one is not enabled for this account")
		}

		// The destination must be routable before payment is taken; the
		// webhook cannot refuse a checkout that already settled.
		switch req.GiftType {
		case "custom_center":
			if err := gift.ValidateCustom(req.GiftCustomName, req.GiftCustomAddress); err != nil {
				return nil, err
			}
		case "default_center":
			centers, err := uow.GiftRepository().FindAllCenters(ctx)
			if err != nil {
				return nil, err
			}
			if _, err := gift.ChooseDefault(centers, s.scheduleCfg.Region); err != nil {
				return nil, err
			}
		}
		giftType = req.GiftType
	}

	totals := c.Totals(s.scheduleCfg)
	currency := s.scheduleCfg.Currency

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(c.Lines)+1)
	for _, l := range c.Lines {
		priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(currency),
			UnitAmount: stripe.Int64(toCents(l.UnitPrice)),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(l.Name),
			},
		}
		if req.Mode == "subscription" {
			priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
				Interval: stripe.String("week"),
			}
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: priceData,
			Quantity:  stripe.Int64(int64(l.Quantity)),
		})
	}

	if totals.ShippingFee > 0 {
		feeData := &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(currency),
			UnitAmount: stripe.Int64(toCents(totals.ShippingFee)),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String("Delivery fee"),
			},
		}
		if req.Mode == "subscription" {
			feeData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
				Interval: stripe.String("week"),
			}
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: feeData,
			Quantity:  stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(req.Mode),
		LineItems:  lineItems,
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	if req.Email != "" {
		params.CustomerEmail = stripe.String(req.Email)
	}

	// The webhook rebuilds the order from this metadata, so everything the
	// order needs must ride along here.
	params.AddMetadata("cart_token", req.CartToken)
	params.AddMetadata("subtotal", fmt.Sprintf("%.2f", totals.Subtotal))
	params.AddMetadata("shipping_fee", fmt.Sprintf("%.2f", totals.ShippingFee))
	if userId != uuid.Nil {
		params.AddMetadata("user_id", userId.String())
	}
	if giftType != "" {
		params.AddMetadata("gift_type", giftType)
		params.AddMetadata("gift_custom_name", req.GiftCustomName)
		params.AddMetadata("gift_custom_address", req.GiftCustomAddress)
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &dto.CheckoutResponse{
		SessionId:   sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}

func (s *checkoutService) DeliveryInfo(ctx context.Context, now time.Time) *dto.DeliveryInfoResponse {
	return &dto.DeliveryInfoResponse{
		OrderWindowOpen:   s.scheduleCfg.WithinOrderWindow(now),
		SwapWindowOpen:    s.scheduleCfg.WithinFreshSwapWindow(now),
		NextCutoff:        s.scheduleCfg.NextCutoff(now).Format(time.RFC3339),
		NextDelivery:      s.scheduleCfg.NextDelivery(now).Format(time.RFC3339),
		FreeShippingAbove: s.scheduleCfg.FreeShippingThreshold,
		DeliveryFee:       s.scheduleCfg.DeliveryFee,
		Region:            s.scheduleCfg.Region,
	}
}
