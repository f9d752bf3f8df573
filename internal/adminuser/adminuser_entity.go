package adminuser

import (
	"time"

	"github.com/google/uuid"
)

const RoleAdminKafe = "admin_kafe"

// AdminProfile ties an identity to the tenant it administers. TenantName
// is filled from tenants at read time; the stored copy is only kept for
// exports.
type AdminProfile struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email      string     `validate:"required"`
	Role       string     `validate:"required"`
	TenantID   *uuid.UUID `gorm:"type:uuid"`
	TenantName string
	CreatedAt  time.Time
}

func (AdminProfile) TableName() string { return "admin_profiles" }

// Saga states.
const (
	SagaStarted            = "started"
	SagaIdentityCreated    = "identity_created"
	SagaCompleted          = "completed"
	SagaCompensated        = "compensated"
	SagaCompensationFailed = "compensation_failed"
)

// ProvisioningSaga is the persisted progress of one Provision call, keyed
// by the client's idempotency key.
type ProvisioningSaga struct {
	ID         string     `gorm:"primaryKey" validate:"required"`
	Email      string     `validate:"required"`
	TenantID   uuid.UUID  `gorm:"type:uuid"`
	IdentityID *uuid.UUID `gorm:"type:uuid"`
	State      string     `validate:"oneof=started identity_created completed compensated compensation_failed"`
	LastError  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ProvisioningSaga) TableName() string { return "provisioning_sagas" }
