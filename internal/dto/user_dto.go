package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	Role           string     `json:"role"`
	GiftOneEnabled bool       `json:"gift_one_enabled"`
	ActiveOrderId  *uuid.UUID `json:"active_order_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=3"`
}

type UpdateGiftOneRequest struct {
	Enabled bool `json:"enabled"`
}
