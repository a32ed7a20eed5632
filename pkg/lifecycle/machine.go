package lifecycle

import (
	"errors"

	"freshsprout-be/internal/entity"
)

var (
	// ErrDuplicateEvent marks an idempotent replay. Callers treat it as
	// success and acknowledge the webhook.
	ErrDuplicateEvent = errors.New("event already processed")

	// ErrUnknownEvent marks an event type the machine does not handle.
	// Callers log and acknowledge; unknown shapes must never crash a
	// webhook handler.
	ErrUnknownEvent = errors.New("unhandled event type")

	// ErrInvalidTransition marks a move the status table forbids,
	// including any attempt to leave a terminal state.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// validNext lists the allowed forward moves. Cancellation and refund are
// reachable from every non-delivered state; paid can fall back to pending
// when a recurring payment fails upstream.
var validNext = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderStatusPending:    {entity.OrderStatusPaid, entity.OrderStatusCancelled, entity.OrderStatusRefunded},
	entity.OrderStatusPaid:       {entity.OrderStatusProcessing, entity.OrderStatusPending, entity.OrderStatusCancelled, entity.OrderStatusRefunded},
	entity.OrderStatusProcessing: {entity.OrderStatusShipped, entity.OrderStatusCancelled, entity.OrderStatusRefunded},
	entity.OrderStatusShipped:    {entity.OrderStatusDelivered, entity.OrderStatusCancelled, entity.OrderStatusRefunded},
	entity.OrderStatusDelivered:  {},
	entity.OrderStatusCancelled:  {},
	entity.OrderStatusRefunded:   {},
}

// IsTerminal reports whether no transition may leave the status.
func IsTerminal(s entity.OrderStatus) bool {
	return len(validNext[s]) == 0
}

// CanTransition reports whether moving from -> to is allowed. A no-op move
// (from == to) is always allowed.
func CanTransition(from, to entity.OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range validNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition computes the next status for an existing order given a
// provider event. It never mutates the order; callers persist the result.
//
// A replayed checkout-completion for an order that already exists returns
// ErrDuplicateEvent. Event types outside the table return ErrUnknownEvent.
// Moves the table forbids return ErrInvalidTransition with the current
// status unchanged.
func Transition(current entity.OrderStatus, ev PaymentEvent) (entity.OrderStatus, error) {
	var target entity.OrderStatus

	switch ev.Type {
	case EventCheckoutCompleted:
		// Order creation is handled before the machine is consulted; an
		// existing order means this delivery is a replay.
		return current, ErrDuplicateEvent
	case EventSubscriptionCreated:
		// Linking only; status is untouched.
		return current, nil
	case EventSubscriptionUpdated:
		switch ev.SubscriptionStatus {
		case "active", "trialing":
			target = entity.OrderStatusPaid
		case "canceled":
			target = entity.OrderStatusCancelled
		default:
			target = entity.OrderStatusPending
		}
	case EventSubscriptionDeleted:
		target = entity.OrderStatusCancelled
	case EventInvoicePaid:
		target = entity.OrderStatusPaid
	case EventInvoicePaymentFailed:
		target = entity.OrderStatusPending
	default:
		return current, ErrUnknownEvent
	}

	if target == current {
		return current, nil
	}
	if !CanTransition(current, target) {
		return current, ErrInvalidTransition
	}
	return target, nil
}
