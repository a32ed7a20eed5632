package model

import (
	"time"

	"github.com/google/uuid"
)

type GiftDelivery struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	GiftType       string     `gorm:"type:varchar(50);not null"`
	SeniorCenterId *uuid.UUID `gorm:"type:uuid;index"`
	CustomName     string     `gorm:"type:varchar(255)"`
	CustomAddress  string     `gorm:"type:text"`
	Status         string     `gorm:"type:varchar(50);not null"`
	DeliveryDate   *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (GiftDelivery) TableName() string {
	return "gift_deliveries"
}

type SeniorCenter struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:text;not null"`
	Region    string    `gorm:"type:varchar(100);not null;index"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SeniorCenter) TableName() string {
	return "senior_centers"
}
