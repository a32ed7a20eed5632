package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProductType string

const (
	ProductTypeMicrogreen ProductType = "microgreen"
	ProductTypeHydrosol   ProductType = "hydrosol"
)

type Product struct {
	Id                   uuid.UUID
	Slug                 string
	Name                 string
	Type                 ProductType
	Description          string
	Price                float64
	IsActive             bool
	InStock              bool
	SubscriptionEligible bool
	CategoryId           *uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type Category struct {
	Id        uuid.UUID
	Slug      string
	Name      string
	SortOrder int
	CreatedAt time.Time
}
