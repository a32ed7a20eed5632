package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReplacementStatus string

const (
	ReplacementStatusPending  ReplacementStatus = "pending"
	ReplacementStatusApproved ReplacementStatus = "approved"
	ReplacementStatusApplied  ReplacementStatus = "applied"
	ReplacementStatusRejected ReplacementStatus = "rejected"
)

// ReplacementRequest is one Fresh Swap: a subscriber asking for a free
// replacement pack for an unused delivery, capped per calendar month.
type ReplacementRequest struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	WeekStartDate  time.Time
	MonthlyCount   int // requests this user made in the same calendar month, including this one
	Reason         string
	Status         ReplacementStatus
	AdminNotes     string
	AppliedOrderId *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
