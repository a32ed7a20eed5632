package model

import (
	"time"

	"github.com/google/uuid"
)

type ReplacementRequest struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	WeekStartDate  time.Time  `gorm:"not null;index"`
	MonthlyCount   int        `gorm:"not null;default:1"`
	Reason         string     `gorm:"type:text"`
	Status         string     `gorm:"type:varchar(50);not null;index"`
	AdminNotes     string     `gorm:"type:text"`
	AppliedOrderId *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (ReplacementRequest) TableName() string {
	return "replacement_requests"
}
