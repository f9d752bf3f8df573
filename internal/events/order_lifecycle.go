package events

import "time"

const OrderLifecycleTopic = "kafe.order.lifecycle.v1"

const (
	OrderCreated         = "order.created"
	OrderStatusChanged   = "order.status_changed"
	OrderPaymentVerified = "order.payment_verified"
)

// OrderLifecycleEvent is the payload of every message on
// OrderLifecycleTopic. EventID is the dedup key of the audit log.
type OrderLifecycleEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	OrderID         string    `json:"order_id"`
	TenantID        string    `json:"tenant_id"`
	ActorID         string    `json:"actor_id,omitempty"`
	FromStatus      string    `json:"from_status,omitempty"`
	ToStatus        string    `json:"to_status,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	PaymentVerified *bool     `json:"payment_verified,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}
