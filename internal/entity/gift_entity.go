package entity

import (
	"time"

	"github.com/google/uuid"
)

type GiftType string
type GiftStatus string

const (
	GiftTypeDefaultCenter GiftType = "default_center"
	GiftTypeCustomCenter  GiftType = "custom_center"

	GiftStatusPending   GiftStatus = "pending"
	GiftStatusScheduled GiftStatus = "scheduled"
	GiftStatusDelivered GiftStatus = "delivered"
	GiftStatusCancelled GiftStatus = "cancelled"
)

// GiftDelivery routes a second box to a senior center alongside a
// subscriber's own delivery.
type GiftDelivery struct {
	Id             uuid.UUID
	OrderId        uuid.UUID
	GiftType       GiftType
	SeniorCenterId *uuid.UUID
	CustomName     string
	CustomAddress  string
	Status         GiftStatus
	DeliveryDate   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type SeniorCenter struct {
	Id        uuid.UUID
	Name      string
	Address   string
	Region    string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
