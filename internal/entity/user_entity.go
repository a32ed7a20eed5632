package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id               uuid.UUID
	Email            string
	PasswordHash     *string
	FullName         string
	Role             string
	StripeCustomerId *string
	// ActiveOrderId points at the subscription Order currently feeding this
	// user's weekly box. Cleared when the subscription is deleted upstream.
	ActiveOrderId  *uuid.UUID
	GiftOneEnabled bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
