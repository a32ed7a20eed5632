package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string
type OrderType string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"

	OrderTypeOneOff       OrderType = "one_off"
	OrderTypeSubscription OrderType = "subscription"
)

// LineItem is a snapshot captured at order creation. The price is copied from
// the cart, never re-read from the catalog, so historical totals stay stable.
type LineItem struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	Id                   uuid.UUID
	UserId               *uuid.UUID // nil for guest checkouts
	Type                 OrderType
	Items                []LineItem
	Subtotal             float64
	ShippingFee          float64
	Total                float64
	Currency             string
	Status               OrderStatus
	StripeSessionId      string
	StripeSubscriptionId *string
	GiftType             *GiftType
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
