package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventConstructors(t *testing.T) {
	paid := NewOrderPaid("ord-1", "jo@example.com", 17.50, "usd")
	assert.Equal(t, TypeOrderPaid, paid.EventType())
	assert.Equal(t, "ord-1", paid.Payload()["order_id"])
	assert.Equal(t, 17.50, paid.Payload()["total"])
	assert.False(t, paid.Timestamp().IsZero())

	shipped := NewOrderShipped("ord-1", "jo@example.com")
	assert.Equal(t, TypeOrderShipped, shipped.EventType())
	assert.Equal(t, "ord-1", shipped.Payload()["order_id"])
	assert.Equal(t, "jo@example.com", shipped.Payload()["email"])

	swap := NewSwapApproved("req-1", "jo@example.com", "2026-08-24")
	assert.Equal(t, TypeSwapApproved, swap.EventType())
	assert.Equal(t, "2026-08-24", swap.Payload()["week_start"])
}
