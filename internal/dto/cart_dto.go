package dto

type AddCartItemRequest struct {
	Slug     string `json:"slug" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Slug     string `json:"slug" validate:"required"`
	Quantity int    `json:"quantity"`
}

type CartLineResponse struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartResponse struct {
	Token       string             `json:"token"`
	Items       []CartLineResponse `json:"items"`
	Subtotal    float64            `json:"subtotal"`
	ShippingFee float64            `json:"shipping_fee"`
	Total       float64            `json:"total"`
}
