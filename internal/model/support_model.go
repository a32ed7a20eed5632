package model

import (
	"time"

	"github.com/google/uuid"
)

type SupportRequest struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type       string     `gorm:"type:varchar(50);not null"`
	Message    string     `gorm:"type:text;not null"`
	Status     string     `gorm:"type:varchar(50);not null;index"`
	AdminNotes string     `gorm:"type:text"`
	OrderId    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`
}

func (SupportRequest) TableName() string {
	return "support_requests"
}
