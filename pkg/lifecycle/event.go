package lifecycle

// EventType mirrors the payment provider's webhook event names, but the rest
// of the package never touches the provider SDK: events arrive here already
// reduced to the handful of fields the state machine needs, so transitions
// can be unit-tested with synthetic events.
type EventType string

const (
	EventCheckoutCompleted    EventType = "checkout.session.completed"
	EventSubscriptionCreated  EventType = "customer.subscription.created"
	EventSubscriptionUpdated  EventType = "customer.subscription.updated"
	EventSubscriptionDeleted  EventType = "customer.subscription.deleted"
	EventInvoicePaid          EventType = "invoice.paid"
	EventInvoicePaymentFailed EventType = "invoice.payment_failed"
)

type CheckoutMode string

const (
	ModePayment      CheckoutMode = "payment"
	ModeSubscription CheckoutMode = "subscription"
)

// PaymentEvent is the minimal provider-agnostic payload.
type PaymentEvent struct {
	Type               EventType
	SessionId          string
	SubscriptionId     string
	CustomerId         string
	SubscriptionStatus string // provider-side status, e.g. "active", "trialing", "canceled"
	Mode               CheckoutMode
	AmountTotal        float64
	Currency           string
	Metadata           map[string]string
}
