package menu

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid" validate:"required"`
	Name      string    `validate:"required"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Category) TableName() string { return "categories" }

type Menu struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid" validate:"required"`
	CategoryID  uuid.UUID `gorm:"type:uuid" validate:"required"`
	Name        string    `validate:"required"`
	Price       int64     `validate:"gte=0"`
	Description *string
	ImageURL    *string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CategoryName is joined in on reads.
	CategoryName string `gorm:"->"`
}

func (Menu) TableName() string { return "menus" }
