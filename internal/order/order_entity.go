package order

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusReceived  = "received"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

const (
	PaymentQRIS = "qris"
	PaymentCash = "cash"
)

// OrderItem is a snapshot of a menu taken at checkout. Later menu edits
// never change it.
type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID                uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	TenantID          uuid.UUID                      `gorm:"type:uuid;not null" validate:"required"`
	TableID           uuid.UUID                      `gorm:"type:uuid;not null"`
	TableNumber       int
	OrderNumber       int64                          `validate:"gt=0"`
	OrderItems        datatypes.JSONSlice[OrderItem] `gorm:"type:jsonb" validate:"min=1"`
	TotalAmount       int64                          `validate:"gte=0"`
	UniqueCode        *int
	Status            string `validate:"oneof=received preparing ready delivered cancelled"`
	PaymentMethod     string `validate:"oneof=qris cash"`
	PaymentVerified   bool
	VerificationToken string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderEvent is one row of the append-only order audit log.
type OrderEvent struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid"`
	TenantID        uuid.UUID `gorm:"type:uuid"`
	EventType       string
	ActorID         string
	FromStatus      string
	ToStatus        string
	Reason          string
	PaymentVerified *bool
	OccurredAt      time.Time
	RecordedAt      time.Time `gorm:"->"`
}

func (OrderEvent) TableName() string { return "order_events" }

// MenuSnapshot is the part of a menu row checkout reads.
type MenuSnapshot struct {
	ID    uuid.UUID
	Name  string
	Price int64
}
