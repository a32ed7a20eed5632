package specification

import "gorm.io/gorm"

// ByStripeSession looks an order up by its checkout session id, the
// idempotency key for webhook-driven creation.
type ByStripeSession struct {
	SessionID string
}

func (s ByStripeSession) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("stripe_session_id = ?", s.SessionID)
}

// ByStripeSubscription looks an order up by its external subscription id.
type ByStripeSubscription struct {
	SubscriptionID string
}

func (s ByStripeSubscription) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("stripe_subscription_id = ?", s.SubscriptionID)
}

// ActiveProducts restricts the catalog to purchasable rows.
type ActiveProducts struct{}

func (s ActiveProducts) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
