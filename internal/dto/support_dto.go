package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSupportRequest struct {
	Type    string     `json:"type" validate:"required,oneof=refund issue general"`
	Message string     `json:"message" validate:"required,min=5"`
	OrderId *uuid.UUID `json:"order_id"`
}

type SupportResponse struct {
	Id         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	AdminNotes string     `json:"admin_notes,omitempty"`
	OrderId    *uuid.UUID `json:"order_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ReviewSupportRequest struct {
	Id         uuid.UUID
	Status     string `json:"status" validate:"required,oneof=in_progress resolved closed"`
	AdminNotes string `json:"admin_notes"`
}
