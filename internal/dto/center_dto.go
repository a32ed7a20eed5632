package dto

import (
	"time"

	"github.com/google/uuid"
)

type SeniorCenterResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Region    string    `json:"region"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateSeniorCenterRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Address string `json:"address" validate:"required,min=5"`
	Region  string `json:"region" validate:"required"`
}

type UpdateSeniorCenterRequest struct {
	Id       uuid.UUID
	Name     string `json:"name" validate:"required,min=2"`
	Address  string `json:"address" validate:"required,min=5"`
	Region   string `json:"region" validate:"required"`
	IsActive bool   `json:"is_active"`
}

type GiftDeliveryResponse struct {
	Id             uuid.UUID  `json:"id"`
	OrderId        uuid.UUID  `json:"order_id"`
	GiftType       string     `json:"gift_type"`
	SeniorCenterId *uuid.UUID `json:"senior_center_id,omitempty"`
	CustomName     string     `json:"custom_name,omitempty"`
	CustomAddress  string     `json:"custom_address,omitempty"`
	Status         string     `json:"status"`
	DeliveryDate   *time.Time `json:"delivery_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type UpdateGiftStatusRequest struct {
	Id           uuid.UUID
	Status       string     `json:"status" validate:"required,oneof=scheduled delivered cancelled"`
	DeliveryDate *time.Time `json:"delivery_date"`
}
