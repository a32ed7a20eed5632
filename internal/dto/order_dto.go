package dto

import (
	"time"

	"github.com/google/uuid"
)

type OrderLineResponse struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type OrderResponse struct {
	Id          uuid.UUID           `json:"id"`
	Type        string              `json:"type"`
	Status      string              `json:"status"`
	Items       []OrderLineResponse `json:"items"`
	Subtotal    float64             `json:"subtotal"`
	ShippingFee float64             `json:"shipping_fee"`
	Total       float64             `json:"total"`
	Currency    string              `json:"currency"`
	GiftType    *string             `json:"gift_type,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type ListOrdersRequest struct {
	Status   string `query:"status" validate:"omitempty,oneof=pending paid processing shipped delivered cancelled refunded"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

type ListOrdersResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// UpdateOrderStatusRequest is the admin fulfilment endpoint's body. Only
// moves allowed by the lifecycle table are accepted.
type UpdateOrderStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=processing shipped delivered cancelled refunded"`
}
