package dto

// CheckoutRequest starts a Stripe Checkout Session from the caller's cart.
// Gift fields only apply to subscription checkouts by a signed-in user with
// Gift-One enabled; they are ignored otherwise.
type CheckoutRequest struct {
	CartToken         string `json:"cart_token" validate:"required"`
	Mode              string `json:"mode" validate:"required,oneof=payment subscription"`
	Email             string `json:"email" validate:"omitempty,email"`
	GiftType          string `json:"gift_type" validate:"omitempty,oneof=default_center custom_center"`
	GiftCustomName    string `json:"gift_custom_name"`
	GiftCustomAddress string `json:"gift_custom_address"`
	SuccessURL        string `json:"success_url" validate:"required,url"`
	CancelURL         string `json:"cancel_url" validate:"required,url"`
}

type CheckoutResponse struct {
	SessionId   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// DeliveryInfoResponse tells the storefront whether ordering is open right
// now and when the next relevant instants fall.
type DeliveryInfoResponse struct {
	OrderWindowOpen   bool    `json:"order_window_open"`
	SwapWindowOpen    bool    `json:"swap_window_open"`
	NextCutoff        string  `json:"next_cutoff"`
	NextDelivery      string  `json:"next_delivery"`
	FreeShippingAbove float64 `json:"free_shipping_above"`
	DeliveryFee       float64 `json:"delivery_fee"`
	Region            string  `json:"region"`
}
