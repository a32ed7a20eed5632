package events

import "time"

// Event is the contract every bus message implements.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ORDER_PAID").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Well-known event types emitted by the order and replacement flows.
const (
	TypeOrderPaid    = "ORDER_PAID"
	TypeOrderShipped = "ORDER_SHIPPED"
	TypeSwapApproved = "SWAP_APPROVED"
)

// BaseEvent is a ready-made implementation for simple payload events.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewOrderPaid builds the event published once a checkout settles.
func NewOrderPaid(orderId, userEmail string, total float64, currency string) BaseEvent {
	return BaseEvent{
		Type: TypeOrderPaid,
		Data: map[string]interface{}{
			"order_id": orderId,
			"email":    userEmail,
			"total":    total,
			"currency": currency,
		},
		OccurredAt: time.Now(),
	}
}

// NewOrderShipped builds the event published when fulfilment marks an order
// as shipped.
func NewOrderShipped(orderId, userEmail string) BaseEvent {
	return BaseEvent{
		Type: TypeOrderShipped,
		Data: map[string]interface{}{
			"order_id": orderId,
			"email":    userEmail,
		},
		OccurredAt: time.Now(),
	}
}

// NewSwapApproved builds the event published when an admin approves a replacement.
func NewSwapApproved(requestId, userEmail, weekStart string) BaseEvent {
	return BaseEvent{
		Type: TypeSwapApproved,
		Data: map[string]interface{}{
			"request_id": requestId,
			"email":      userEmail,
			"week_start": weekStart,
		},
		OccurredAt: time.Now(),
	}
}
