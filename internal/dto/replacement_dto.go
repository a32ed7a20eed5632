package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReplacementRequest struct {
	Reason string `json:"reason" validate:"required,min=5"`
}

type ReplacementResponse struct {
	Id             uuid.UUID  `json:"id"`
	WeekStartDate  time.Time  `json:"week_start_date"`
	MonthlyCount   int        `json:"monthly_count"`
	Reason         string     `json:"reason"`
	Status         string     `json:"status"`
	AdminNotes     string     `json:"admin_notes,omitempty"`
	AppliedOrderId *uuid.UUID `json:"applied_order_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ReviewReplacementRequest struct {
	Id         uuid.UUID
	Approve    bool   `json:"approve"`
	AdminNotes string `json:"admin_notes"`
}

type ApplyReplacementRequest struct {
	Id      uuid.UUID
	OrderId uuid.UUID `json:"order_id" validate:"required"`
}
