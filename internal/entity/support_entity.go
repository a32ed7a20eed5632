package entity

import (
	"time"

	"github.com/google/uuid"
)

type SupportType string
type SupportStatus string

const (
	SupportTypeRefund  SupportType = "refund"
	SupportTypeIssue   SupportType = "issue"
	SupportTypeGeneral SupportType = "general"

	SupportStatusOpen       SupportStatus = "open"
	SupportStatusInProgress SupportStatus = "in_progress"
	SupportStatusResolved   SupportStatus = "resolved"
	SupportStatusClosed     SupportStatus = "closed"
)

type SupportRequest struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Type       SupportType
	Message    string
	Status     SupportStatus
	AdminNotes string
	OrderId    *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
