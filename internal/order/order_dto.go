package order

import (
	"time"

	"go-kafe/internal/tenant"
)

type CheckoutItem struct {
	MenuID   string `json:"menu_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type CheckoutRequest struct {
	Items             []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	PaymentMethod     string         `json:"payment_method" binding:"required,oneof=qris cash"`
	VerificationToken string         `json:"verification_token"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=received preparing ready delivered cancelled"`
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type PaymentRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}

type ListFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=received preparing ready delivered cancelled"`
}

type OrderResponse struct {
	ID              string      `json:"id"`
	OrderNumber     int64       `json:"order_number"`
	TableID         string      `json:"table_id"`
	TableNumber     int         `json:"table_number"`
	Items           []OrderItem `json:"items"`
	Subtotal        int64       `json:"subtotal"`
	UniqueCode      *int        `json:"unique_code,omitempty"`
	TotalAmount     int64       `json:"total_amount"`
	Status          string      `json:"status"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentVerified bool        `json:"payment_verified"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// PublicOrderResponse is the customer status page. It carries the tenant's
// payment details so the page can show the QRIS image.
type PublicOrderResponse struct {
	OrderResponse
	Tenant *tenant.PublicTenantResponse `json:"tenant,omitempty"`
}

type OrderEventResponse struct {
	ID              string    `json:"id"`
	EventType       string    `json:"event_type"`
	ActorID         string    `json:"actor_id,omitempty"`
	FromStatus      string    `json:"from_status,omitempty"`
	ToStatus        string    `json:"to_status,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	PaymentVerified *bool     `json:"payment_verified,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func mapToResponse(o Order) OrderResponse {
	items := []OrderItem(o.OrderItems)
	if items == nil {
		items = []OrderItem{}
	}
	return OrderResponse{
		ID:              o.ID.String(),
		OrderNumber:     o.OrderNumber,
		TableID:         o.TableID.String(),
		TableNumber:     o.TableNumber,
		Items:           items,
		Subtotal:        Subtotal(items),
		UniqueCode:      o.UniqueCode,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		PaymentVerified: o.PaymentVerified,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func mapToListResponse(orders []Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, mapToResponse(o))
	}
	return out
}

func mapEvents(evs []OrderEvent) []OrderEventResponse {
	out := make([]OrderEventResponse, 0, len(evs))
	for _, e := range evs {
		out = append(out, OrderEventResponse{
			ID:              e.ID.String(),
			EventType:       e.EventType,
			ActorID:         e.ActorID,
			FromStatus:      e.FromStatus,
			ToStatus:        e.ToStatus,
			Reason:          e.Reason,
			PaymentVerified: e.PaymentVerified,
			OccurredAt:      e.OccurredAt,
		})
	}
	return out
}
