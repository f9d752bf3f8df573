package tenant

import (
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `validate:"required"`
	Slug           string    `validate:"required"`
	DailyToken     string    `validate:"len=4,numeric"`
	LogoURL        string
	QrisImageURL   string
	Address        string
	OwnerName      string
	PhoneNumber    string
	ReceiptMessage string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Tenant) TableName() string { return "tenants" }

// SlugAlias remembers a slug the tenant had before a rename so old links
// keep resolving.
type SlugAlias struct {
	Slug      string    `gorm:"primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

func (SlugAlias) TableName() string { return "tenant_slug_aliases" }

// Resolution is the result of looking a tenant up by slug. Canonical is
// false when the slug matched a historic alias.
type Resolution struct {
	Tenant    *Tenant
	Canonical bool
}
