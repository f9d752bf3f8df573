package superadmin

import (
	"time"

	"github.com/google/uuid"
)

const RoleSuperAdmin = "superadmin"

type SuperAdminRole struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `validate:"required"`
	Role         string    `validate:"eq=superadmin"`
	AssignedAt   time.Time
	ViaBootstrap bool
}

func (SuperAdminRole) TableName() string { return "super_admins" }
