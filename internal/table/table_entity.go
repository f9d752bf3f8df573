package table

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
)

func ValidStatus(s string) bool {
	return s == StatusAvailable || s == StatusOccupied
}

type Table struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null" validate:"required"`
	TableNumber int       `validate:"gt=0"`
	Status      string    `validate:"oneof=available occupied"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Table) TableName() string { return "cafe_tables" }
