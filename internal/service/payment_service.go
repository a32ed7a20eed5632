package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/pkg/logger"
	"freshsprout-be/internal/repository/contract"
	"freshsprout-be/internal/repository/specification"
	"freshsprout-be/internal/repository/unitofwork"
	"freshsprout-be/pkg/cart"
	"freshsprout-be/pkg/events"
	"freshsprout-be/pkg/gift"
	"freshsprout-be/pkg/lifecycle"
	pktNats "freshsprout-be/pkg/nats"
	"freshsprout-be/pkg/schedule"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
)

type IPaymentService interface {
	// HandleEvent processes one provider webhook event. A nil return means
	// the event is settled and must be acknowledged, including duplicates
	// and event types we do not handle. A non-nil return means storage
	// failed and the provider should redeliver.
	HandleEvent(ctx context.Context, ev lifecycle.PaymentEvent) error
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	cartStore      cart.Store
	scheduleCfg    schedule.Config
	publisher      IPublisherService
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	cartStore cart.Store,
	scheduleCfg schedule.Config,
	publisher IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		cartStore:      cartStore,
		scheduleCfg:    scheduleCfg,
		publisher:      publisher,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

// TranslateStripeEvent reduces a raw Stripe event to the provider-agnostic
// payload the lifecycle rules consume. The second return is false for event
// types the system does not subscribe to.
func TranslateStripeEvent(event stripe.Event) (lifecycle.PaymentEvent, bool) {
	ev := lifecycle.PaymentEvent{
		Type:     lifecycle.EventType(event.Type),
		Metadata: map[string]string{},
	}

	switch ev.Type {
	case lifecycle.EventCheckoutCompleted:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return ev, false
		}
		ev.SessionId = sess.ID
		ev.Mode = lifecycle.CheckoutMode(sess.Mode)
		ev.AmountTotal = float64(sess.AmountTotal) / 100
		ev.Currency = string(sess.Currency)
		if sess.Subscription != nil {
			ev.SubscriptionId = sess.Subscription.ID
		}
		if sess.Customer != nil {
			ev.CustomerId = sess.Customer.ID
		}
		for k, v := range sess.Metadata {
			ev.Metadata[k] = v
		}
		if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
			ev.Metadata["customer_email"] = sess.CustomerDetails.Email
		}
		return ev, true

	case lifecycle.EventSubscriptionCreated, lifecycle.EventSubscriptionUpdated, lifecycle.EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return ev, false
		}
		ev.SubscriptionId = sub.ID
		ev.SubscriptionStatus = string(sub.Status)
		if sub.Customer != nil {
			ev.CustomerId = sub.Customer.ID
		}
		return ev, true

	case lifecycle.EventInvoicePaid, lifecycle.EventInvoicePaymentFailed:
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return ev, false
		}
		if inv.Subscription != nil {
			ev.SubscriptionId = inv.Subscription.ID
		}
		if inv.Customer != nil {
			ev.CustomerId = inv.Customer.ID
		}
		ev.AmountTotal = float64(inv.AmountPaid) / 100
		ev.Currency = string(inv.Currency)
		return ev, true
	}

	return ev, false
}

func (s *paymentService) HandleEvent(ctx context.Context, ev lifecycle.PaymentEvent) error {
	switch ev.Type {
	case lifecycle.EventCheckoutCompleted:
		return s.handleCheckoutCompleted(ctx, ev)
	case lifecycle.EventSubscriptionCreated,
		lifecycle.EventSubscriptionUpdated,
		lifecycle.EventSubscriptionDeleted,
		lifecycle.EventInvoicePaid,
		lifecycle.EventInvoicePaymentFailed:
		return s.handleSubscriptionEvent(ctx, ev)
	default:
		s.log.Warn("payment", "ignoring unhandled event type", map[string]interface{}{"type": string(ev.Type)})
		return nil
	}
}

func (s *paymentService) handleCheckoutCompleted(ctx context.Context, ev lifecycle.PaymentEvent) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.OrderRepository().FindOne(ctx, specification.ByStripeSession{SessionID: ev.SessionId})
	if err != nil {
		return err
	}
	if existing != nil {
		s.log.Info("payment", "duplicate checkout completion, acknowledging", map[string]interface{}{"session_id": ev.SessionId})
		return nil
	}

	order, err := s.buildOrder(ctx, ev)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		if errors.Is(err, contract.ErrDuplicateOrder) {
			// Lost the insert race against a concurrent delivery of the
			// same event. The winner's row is the order; ack.
			s.log.Info("payment", "duplicate order insert, acknowledging", map[string]interface{}{"session_id": ev.SessionId})
			return nil
		}
		return err
	}

	if order.GiftType != nil {
		if err := s.createGiftDelivery(ctx, uow, order, ev.Metadata); err != nil {
			return err
		}
	}

	if order.UserId != nil {
		if err := s.syncUserAfterCheckout(ctx, uow, order, ev.CustomerId); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if token := ev.Metadata["cart_token"]; token != "" {
		if err := s.cartStore.Clear(ctx, token); err != nil {
			s.log.Warn("payment", "failed to clear cart after checkout", map[string]interface{}{"error": err.Error()})
		}
	}

	s.notifyOrderPaid(ctx, order, ev.Metadata["customer_email"])
	return nil
}

func (s *paymentService) buildOrder(ctx context.Context, ev lifecycle.PaymentEvent) (*entity.Order, error) {
	order := &entity.Order{
		Id:              uuid.New(),
		Type:            entity.OrderTypeOneOff,
		Status:          entity.OrderStatusPaid,
		StripeSessionId: ev.SessionId,
		Total:           ev.AmountTotal,
		Currency:        ev.Currency,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if ev.Mode == lifecycle.ModeSubscription {
		order.Type = entity.OrderTypeSubscription
	}
	if ev.SubscriptionId != "" {
		subId := ev.SubscriptionId
		order.StripeSubscriptionId = &subId
	}

	if v := ev.Metadata["subtotal"]; v != "" {
		order.Subtotal, _ = strconv.ParseFloat(v, 64)
	}
	if v := ev.Metadata["shipping_fee"]; v != "" {
		order.ShippingFee, _ = strconv.ParseFloat(v, 64)
	}
	if v := ev.Metadata["user_id"]; v != "" {
		if userId, err := uuid.Parse(v); err == nil {
			order.UserId = &userId
		}
	}
	if v := ev.Metadata["gift_type"]; v != "" {
		gt := entity.GiftType(v)
		order.GiftType = &gt
	}

	// Items are snapshotted from the cart the session was created from.
	// A missing cart (expired between checkout and webhook) still yields a
	// valid order with the totals from the event.
	if token := ev.Metadata["cart_token"]; token != "" {
		c, err := s.cartStore.Load(ctx, token)
		if err != nil {
			return nil, err
		}
		for _, l := range c.Lines {
			order.Items = append(order.Items, entity.LineItem{
				Slug:      l.Slug,
				Name:      l.Name,
				UnitPrice: l.UnitPrice,
				Quantity:  l.Quantity,
			})
		}
	}

	return order, nil
}

func (s *paymentService) createGiftDelivery(ctx context.Context, uow unitofwork.UnitOfWork, order *entity.Order, metadata map[string]string) error {
	delivery := &entity.GiftDelivery{
		Id:        uuid.New(),
		OrderId:   order.Id,
		GiftType:  *order.GiftType,
		Status:    entity.GiftStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// The destination was validated when the checkout session was created.
	// Payment has already been taken by the time this runs, so a center
	// retired (or metadata lost) in between must not fail the order: the
	// delivery is stored unrouted for admin follow-up instead.
	switch *order.GiftType {
	case entity.GiftTypeCustomCenter:
		delivery.CustomName = metadata["gift_custom_name"]
		delivery.CustomAddress = metadata["gift_custom_address"]
		if err := gift.ValidateCustom(delivery.CustomName, delivery.CustomAddress); err != nil {
			s.log.Warn("payment", "gift destination metadata incomplete, delivery left unrouted", map[string]interface{}{
				"order_id": order.Id.String(),
			})
		}
	case entity.GiftTypeDefaultCenter:
		centers, err := uow.GiftRepository().FindAllCenters(ctx)
		if err != nil {
			return err
		}
		if chosen, err := gift.ChooseDefault(centers, s.scheduleCfg.Region); err != nil {
			s.log.Warn("payment", "no active senior center for gift, delivery left unrouted", map[string]interface{}{
				"order_id": order.Id.String(),
				"region":   s.scheduleCfg.Region,
			})
		} else {
			delivery.SeniorCenterId = &chosen.Id
		}
	}

	return uow.GiftRepository().CreateDelivery(ctx, delivery)
}

func (s *paymentService) syncUserAfterCheckout(ctx context.Context, uow unitofwork.UnitOfWork, order *entity.Order, customerId string) error {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *order.UserId})
	if err != nil {
		return err
	}
	if user == nil {
		s.log.Warn("payment", "checkout metadata references unknown user", map[string]interface{}{"user_id": order.UserId.String()})
		return nil
	}

	changed := false
	if order.Type == entity.OrderTypeSubscription {
		user.ActiveOrderId = &order.Id
		changed = true
	}
	if customerId != "" && (user.StripeCustomerId == nil || *user.StripeCustomerId != customerId) {
		cid := customerId
		user.StripeCustomerId = &cid
		changed = true
	}
	if !changed {
		return nil
	}
	user.UpdatedAt = time.Now()
	return uow.UserRepository().Update(ctx, user)
}

func (s *paymentService) handleSubscriptionEvent(ctx context.Context, ev lifecycle.PaymentEvent) error {
	if ev.SubscriptionId == "" {
		s.log.Warn("payment", "subscription event without subscription id", map[string]interface{}{"type": string(ev.Type)})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByStripeSubscription{SubscriptionID: ev.SubscriptionId})
	if err != nil {
		return err
	}
	if order == nil {
		// The subscription.created event usually races the checkout
		// completion; the link is established by the checkout handler.
		s.log.Info("payment", "no order for subscription yet, acknowledging", map[string]interface{}{"subscription_id": ev.SubscriptionId})
		return nil
	}

	next, err := lifecycle.Transition(order.Status, ev)
	if err != nil {
		if errors.Is(err, lifecycle.ErrInvalidTransition) || errors.Is(err, lifecycle.ErrUnknownEvent) || errors.Is(err, lifecycle.ErrDuplicateEvent) {
			s.log.Warn("payment", "event does not apply, acknowledging", map[string]interface{}{
				"type":   string(ev.Type),
				"status": string(order.Status),
			})
			return nil
		}
		return err
	}

	// An active or trialing update makes this order the account's current
	// subscription; created establishes the user link when checkout metadata
	// carried none.
	activates := ev.Type == lifecycle.EventSubscriptionUpdated &&
		(ev.SubscriptionStatus == "active" || ev.SubscriptionStatus == "trialing")
	links := activates || ev.Type == lifecycle.EventSubscriptionCreated

	if next == order.Status && !links && ev.Type != lifecycle.EventSubscriptionDeleted {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	var user *entity.User
	if links || ev.Type == lifecycle.EventSubscriptionDeleted {
		user, err = s.resolveSubscriptionUser(ctx, uow, order, ev.CustomerId)
		if err != nil {
			return err
		}
		if user == nil && links {
			s.log.Warn("payment", "subscription has no resolvable user", map[string]interface{}{
				"subscription_id": ev.SubscriptionId,
				"customer_id":     ev.CustomerId,
			})
		}
	}

	order.Status = next
	if links && order.UserId == nil && user != nil {
		order.UserId = &user.Id
	}
	order.UpdatedAt = time.Now()
	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if activates && user != nil && (user.ActiveOrderId == nil || *user.ActiveOrderId != order.Id) {
		user.ActiveOrderId = &order.Id
		user.UpdatedAt = time.Now()
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return err
		}
	}

	// A deleted subscription stops feeding the user's weekly box.
	if ev.Type == lifecycle.EventSubscriptionDeleted &&
		user != nil && user.ActiveOrderId != nil && *user.ActiveOrderId == order.Id {
		user.ActiveOrderId = nil
		user.UpdatedAt = time.Now()
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return err
		}
	}

	return uow.Commit()
}

// resolveSubscriptionUser finds the account a subscription order belongs to,
// falling back to the provider customer id when the order carries no user
// link yet.
func (s *paymentService) resolveSubscriptionUser(ctx context.Context, uow unitofwork.UnitOfWork, order *entity.Order, customerId string) (*entity.User, error) {
	if order.UserId != nil {
		return uow.UserRepository().FindOne(ctx, specification.ByID{ID: *order.UserId})
	}
	if customerId != "" {
		return uow.UserRepository().FindByStripeCustomer(ctx, customerId)
	}
	return nil, nil
}

func (s *paymentService) notifyOrderPaid(ctx context.Context, order *entity.Order, email string) {
	if email == "" && order.UserId != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *order.UserId}); err == nil && user != nil {
			email = user.Email
		}
	}
	if email == "" {
		return
	}

	msg := dto.OrderNotificationMessage{
		OrderId:  order.Id,
		Email:    email,
		Total:    order.Total,
		Currency: order.Currency,
	}
	if payload, err := json.Marshal(msg); err == nil {
		if err := s.publisher.Publish(ctx, payload); err != nil {
			s.log.Warn("payment", "failed to queue order notification", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewOrderPaid(order.Id.String(), email, order.Total, order.Currency)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("payment", "failed to publish order paid event", map[string]interface{}{"error": err.Error()})
		}
	}
}
