package report

import (
	"time"

	"github.com/google/uuid"
)

// OrderRow is the slice of an order reports read.
type OrderRow struct {
	ID              uuid.UUID
	OrderNumber     int64
	TableNumber     int
	TotalAmount     int64  `validate:"gte=0"`
	Status          string `validate:"required"`
	PaymentMethod   string `validate:"oneof=qris cash"`
	PaymentVerified bool
	CreatedAt       time.Time
}
