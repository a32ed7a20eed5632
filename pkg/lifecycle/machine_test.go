package lifecycle

import (
	"errors"
	"testing"

	"freshsprout-be/internal/entity"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		current entity.OrderStatus
		ev      PaymentEvent
		want    entity.OrderStatus
		wantErr error
	}{
		{
			name:    "checkout replay on existing order is a duplicate",
			current: entity.OrderStatusPaid,
			ev:      PaymentEvent{Type: EventCheckoutCompleted, SessionId: "cs_123"},
			want:    entity.OrderStatusPaid,
			wantErr: ErrDuplicateEvent,
		},
		{
			name:    "subscription created only links, keeps status",
			current: entity.OrderStatusPaid,
			ev:      PaymentEvent{Type: EventSubscriptionCreated, SubscriptionId: "sub_1"},
			want:    entity.OrderStatusPaid,
		},
		{
			name:    "subscription active marks paid",
			current: entity.OrderStatusPending,
			ev:      PaymentEvent{Type: EventSubscriptionUpdated, SubscriptionStatus: "active"},
			want:    entity.OrderStatusPaid,
		},
		{
			name:    "subscription trialing marks paid",
			current: entity.OrderStatusPending,
			ev:      PaymentEvent{Type: EventSubscriptionUpdated, SubscriptionStatus: "trialing"},
			want:    entity.OrderStatusPaid,
		},
		{
			name:    "subscription canceled cancels",
			current: entity.OrderStatusPaid,
			ev:      PaymentEvent{Type: EventSubscriptionUpdated, SubscriptionStatus: "canceled"},
			want:    entity.OrderStatusCancelled,
		},
		{
			name:    "subscription past_due falls back to pending",
			current: entity.OrderStatusPaid,
			ev:      PaymentEvent{Type: EventSubscriptionUpdated, SubscriptionStatus: "past_due"},
			want:    entity.OrderStatusPending,
		},
		{
			name:    "subscription deleted cancels",
			current: entity.OrderStatusPaid,
			ev:      PaymentEvent{Type: EventSubscriptionDeleted},
			want:    entity.OrderStatusCancelled,
		},
		{
			name:    "invoice paid marks paid",
			current: entity.OrderStatusPending,
			ev:      PaymentEvent{Type: EventInvoicePaid},
			want:    entity.OrderStatusPaid,
		},
		{
			name:    "invoice failure marks pending",
			current: entity.OrderStatusPaid,
			ev:      PaymentEvent{Type: EventInvoicePaymentFailed},
			want:    entity.OrderStatusPending,
		},
		{
			name:    "no-op when already in target state",
			current: entity.OrderStatusPaid,
			ev:      PaymentEvent{Type: EventInvoicePaid},
			want:    entity.OrderStatusPaid,
		},
		{
			name:    "unknown event type is rejected as unknown",
			current: entity.OrderStatusPaid,
			ev:      PaymentEvent{Type: "charge.dispute.created"},
			want:    entity.OrderStatusPaid,
			wantErr: ErrUnknownEvent,
		},
		{
			name:    "cancelled never leaves cancelled",
			current: entity.OrderStatusCancelled,
			ev:      PaymentEvent{Type: EventInvoicePaid},
			want:    entity.OrderStatusCancelled,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "refunded never leaves refunded",
			current: entity.OrderStatusRefunded,
			ev:      PaymentEvent{Type: EventSubscriptionUpdated, SubscriptionStatus: "active"},
			want:    entity.OrderStatusRefunded,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "delivered never leaves delivered",
			current: entity.OrderStatusDelivered,
			ev:      PaymentEvent{Type: EventSubscriptionDeleted},
			want:    entity.OrderStatusDelivered,
			wantErr: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.current, tt.ev)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Transition() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Transition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to entity.OrderStatus
		want     bool
	}{
		{entity.OrderStatusPending, entity.OrderStatusPaid, true},
		{entity.OrderStatusPaid, entity.OrderStatusProcessing, true},
		{entity.OrderStatusProcessing, entity.OrderStatusShipped, true},
		{entity.OrderStatusShipped, entity.OrderStatusDelivered, true},
		{entity.OrderStatusPending, entity.OrderStatusCancelled, true},
		{entity.OrderStatusPaid, entity.OrderStatusCancelled, true},
		{entity.OrderStatusProcessing, entity.OrderStatusCancelled, true},
		{entity.OrderStatusPaid, entity.OrderStatusRefunded, true},
		{entity.OrderStatusPaid, entity.OrderStatusPaid, true},

		{entity.OrderStatusPending, entity.OrderStatusShipped, false},
		{entity.OrderStatusPaid, entity.OrderStatusDelivered, false},
		{entity.OrderStatusCancelled, entity.OrderStatusPaid, false},
		{entity.OrderStatusRefunded, entity.OrderStatusPending, false},
		{entity.OrderStatusDelivered, entity.OrderStatusRefunded, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []entity.OrderStatus{
		entity.OrderStatusDelivered, entity.OrderStatusCancelled, entity.OrderStatusRefunded,
	} {
		if !IsTerminal(s) {
			t.Errorf("IsTerminal(%s) = false, want true", s)
		}
	}
	for _, s := range []entity.OrderStatus{
		entity.OrderStatusPending, entity.OrderStatusPaid,
		entity.OrderStatusProcessing, entity.OrderStatusShipped,
	} {
		if IsTerminal(s) {
			t.Errorf("IsTerminal(%s) = true, want false", s)
		}
	}
}
