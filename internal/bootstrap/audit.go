package bootstrap

import "context"

// Audit actions written by the services.
const (
	AuditServerShutdown     = "SERVER_SHUTDOWN"
	AuditTenantCreated      = "TENANT_CREATED"
	AuditTenantRenamed      = "TENANT_RENAMED"
	AuditTenantDeleted      = "TENANT_DELETED"
	AuditDailyTokenRotated  = "DAILY_TOKEN_ROTATED"
	AuditAdminProvisioned   = "ADMIN_PROVISIONED"
	AuditAdminCompensated   = "ADMIN_PROVISION_COMPENSATED"
	AuditAdminDeleted       = "ADMIN_DELETED"
	AuditSuperAdminAssigned = "SUPERADMIN_BOOTSTRAPPED"
)

type AuditLog struct {
	Action   string
	Message  string
	ActorID  string
	TenantID string
	Meta     map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// NopAuditLogger discards entries.
type NopAuditLogger struct{}

func (NopAuditLogger) Log(context.Context, AuditLog) {}
