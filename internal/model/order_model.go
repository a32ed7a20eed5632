package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Order struct {
	Id       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId   *uuid.UUID     `gorm:"type:uuid;index"`
	Type     string         `gorm:"type:varchar(50);not null"`
	Items    datatypes.JSON `gorm:"type:jsonb;not null"`
	Subtotal float64        `gorm:"type:decimal(10,2);not null"`
	Shipping float64        `gorm:"type:decimal(10,2);not null;column:shipping_fee"`
	Total    float64        `gorm:"type:decimal(10,2);not null"`
	Currency string         `gorm:"type:varchar(10);not null"`
	Status   string         `gorm:"type:varchar(50);not null;index"`
	// The unique index is the idempotency guard: concurrent webhook
	// deliveries for one checkout session race to insert, the loser is
	// rejected by the constraint.
	StripeSessionId      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	StripeSubscriptionId *string   `gorm:"type:varchar(255);index"`
	GiftType             *string   `gorm:"type:varchar(50)"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}
