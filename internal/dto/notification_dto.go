package dto

import "github.com/google/uuid"

// OrderNotificationMessage rides the in-process bus from the webhook handler
// to the notifier worker.
type OrderNotificationMessage struct {
	OrderId  uuid.UUID `json:"order_id"`
	Email    string    `json:"email"`
	Total    float64   `json:"total"`
	Currency string    `json:"currency"`
}

// SwapNotificationMessage is queued when an admin approves a replacement.
type SwapNotificationMessage struct {
	RequestId uuid.UUID `json:"request_id"`
	Email     string    `json:"email"`
	WeekStart string    `json:"week_start"`
}
