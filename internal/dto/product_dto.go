package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProductResponse struct {
	Id                   uuid.UUID  `json:"id"`
	Slug                 string     `json:"slug"`
	Name                 string     `json:"name"`
	Type                 string     `json:"type"`
	Description          string     `json:"description"`
	Price                float64    `json:"price"`
	InStock              bool       `json:"in_stock"`
	SubscriptionEligible bool       `json:"subscription_eligible"`
	CategoryId           *uuid.UUID `json:"category_id,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

type ListProductsRequest struct {
	Type     string `query:"type" validate:"omitempty,oneof=microgreen hydrosol"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type CreateProductRequest struct {
	Slug                 string  `json:"slug" validate:"required,min=2"`
	Name                 string  `json:"name" validate:"required,min=2"`
	Type                 string  `json:"type" validate:"required,oneof=microgreen hydrosol"`
	Description          string  `json:"description"`
	Price                float64 `json:"price" validate:"required,gt=0"`
	InStock              bool    `json:"in_stock"`
	SubscriptionEligible bool    `json:"subscription_eligible"`
}

type UpdateProductRequest struct {
	Id                   uuid.UUID
	Name                 string  `json:"name" validate:"required,min=2"`
	Description          string  `json:"description"`
	Price                float64 `json:"price" validate:"required,gt=0"`
	IsActive             bool    `json:"is_active"`
	InStock              bool    `json:"in_stock"`
	SubscriptionEligible bool    `json:"subscription_eligible"`
}
