package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug                 string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name                 string     `gorm:"type:varchar(255);not null"`
	Type                 string     `gorm:"type:varchar(50);not null"`
	Description          string     `gorm:"type:text"`
	Price                float64    `gorm:"type:decimal(10,2);not null"`
	IsActive             bool       `gorm:"default:true"`
	InStock              bool       `gorm:"default:true"`
	SubscriptionEligible bool       `gorm:"default:false"`
	CategoryId           *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt            time.Time  `gorm:"autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

type Category struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	SortOrder int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Category) TableName() string {
	return "categories"
}
