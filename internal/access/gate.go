// Package access decides, per request, whether the caller may enter the
// tenant admin or super admin area. Nothing is cached: every request is
// verified against the store again.
package access

import (
	"context"
	"errors"

	"go-kafe/internal/adminuser"
	adminusererrors "go-kafe/internal/adminuser/errors"
	"go-kafe/internal/diagnostics"
	"go-kafe/internal/shared/contextutil"
	"go-kafe/internal/superadmin"
	superadminerrors "go-kafe/internal/superadmin/errors"
	"go-kafe/internal/tenant"
	tenanterrors "go-kafe/internal/tenant/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type State int

const (
	Unverified State = iota
	Verifying
	Authorized
	Denied
)

func (s State) String() string {
	switch s {
	case Unverified:
		return "unverified"
	case Verifying:
		return "verifying"
	case Authorized:
		return "authorized"
	case Denied:
		return "denied"
	}
	return "unknown"
}

// Denial reasons.
const (
	ReasonUnauthenticated   = "unauthenticated"
	ReasonNoProfile         = "no_profile"
	ReasonWrongRole         = "wrong_role"
	ReasonNoTenant          = "no_tenant"
	ReasonTenantMissing     = "tenant_missing"
	ReasonTenantMismatch    = "tenant_mismatch"
	ReasonNotSuperAdmin     = "not_superadmin"
	ReasonBootstrapRejected = "bootstrap_rejected"
	ReasonError             = "error"
)

// Identity is the authenticated caller, as established by AuthMiddleware.
type Identity struct {
	UserID string
	Email  string
}

// Decision is the terminal state of one verification. CanonicalSlug is set
// when an authorized admin reached their tenant through a historic slug and
// should be sent to the current one.
type Decision struct {
	State         State
	Reason        string
	Role          string
	Tenant        *tenant.Tenant
	CanonicalSlug string
	Bootstrapped  bool
}

func (d Decision) NeedsRedirect() bool {
	return d.State == Authorized && d.CanonicalSlug != ""
}

//go:generate mockgen -source=gate.go -destination=mock/gate_mock.go -package=mock
type ProfileLookup interface {
	GetProfile(ctx context.Context, identityID string) (*adminuser.AdminProfile, error)
}

type TenantStore interface {
	GetByID(ctx context.Context, id string) (*tenant.Tenant, error)
	ResolveBySlug(ctx context.Context, slug string) (tenant.Resolution, error)
}

type SuperAdmins interface {
	IsSuperAdmin(ctx context.Context, userID string) (bool, error)
	AnyExists(ctx context.Context) (bool, error)
	Bootstrap(ctx context.Context, userID, email string) (*superadmin.SuperAdminRole, error)
}

type Gate struct {
	profiles    ProfileLookup
	tenants     TenantStore
	superAdmins SuperAdmins
	diagnostics diagnostics.Sink
	logger      *zap.Logger
}

func NewGate(profiles ProfileLookup, tenants TenantStore, superAdmins SuperAdmins, sink diagnostics.Sink, logger ...*zap.Logger) *Gate {
	l := zap.L().Named("access.gate")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("access.gate")
	}
	return &Gate{
		profiles:    profiles,
		tenants:     tenants,
		superAdmins: superAdmins,
		diagnostics: sink,
		logger:      l,
	}
}

func (g *Gate) deny(ctx context.Context, reason string, fields ...zap.Field) Decision {
	log := contextutil.GetLogger(ctx, g.logger)
	fields = append(fields, zap.String("reason", reason))
	if reason == ReasonError {
		log.Error("access denied", fields...)
	} else {
		log.Info("access denied", fields...)
	}
	return Decision{State: Denied, Reason: reason}
}

// VerifyTenantAdmin checks that identity administers the tenant addressed
// by slug.
func (g *Gate) VerifyTenantAdmin(ctx context.Context, identity *Identity, slug string) Decision {
	if identity == nil || identity.UserID == "" {
		return g.deny(ctx, ReasonUnauthenticated, zap.String("slug", slug))
	}
	log := contextutil.GetLogger(ctx, g.logger).With(zap.String("user_id", identity.UserID), zap.String("slug", slug))
	log.Debug("access state", zap.Stringer("state", Verifying))

	profile, err := g.profiles.GetProfile(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, adminusererrors.ErrAdminNotFound) {
			return g.deny(ctx, ReasonNoProfile, zap.String("user_id", identity.UserID))
		}
		return g.deny(ctx, ReasonError, zap.String("user_id", identity.UserID), zap.Error(err))
	}
	if profile.Role != adminuser.RoleAdminKafe {
		return g.deny(ctx, ReasonWrongRole, zap.String("user_id", identity.UserID), zap.String("role", profile.Role))
	}
	if profile.TenantID == nil || *profile.TenantID == uuid.Nil {
		return g.deny(ctx, ReasonNoTenant, zap.String("user_id", identity.UserID))
	}

	own, err := g.tenants.GetByID(ctx, profile.TenantID.String())
	if err != nil {
		if errors.Is(err, tenanterrors.ErrTenantNotFound) {
			return g.deny(ctx, ReasonTenantMissing, zap.String("tenant_id", profile.TenantID.String()))
		}
		return g.deny(ctx, ReasonError, zap.String("tenant_id", profile.TenantID.String()), zap.Error(err))
	}

	if own.Slug == slug {
		log.Debug("access state", zap.Stringer("state", Authorized))
		return Decision{State: Authorized, Role: profile.Role, Tenant: own}
	}

	// The URL may carry a slug the admin's own tenant had before a rename.
	res, err := g.tenants.ResolveBySlug(ctx, slug)
	switch {
	case err == nil && !res.Canonical && res.Tenant.ID == own.ID:
		log.Debug("access state", zap.Stringer("state", Authorized), zap.String("canonical_slug", own.Slug))
		return Decision{State: Authorized, Role: profile.Role, Tenant: own, CanonicalSlug: own.Slug}
	case err != nil && !errors.Is(err, tenanterrors.ErrTenantNotFound):
		return g.deny(ctx, ReasonError, zap.Error(err))
	}

	if g.diagnostics != nil {
		g.diagnostics.Emit(ctx, diagnostics.PermissionDenied{
			Path:      "tenants/" + slug,
			Operation: "admin",
			Payload:   map[string]any{"user_id": identity.UserID, "own_tenant": own.Slug},
			Reason:    ReasonTenantMismatch,
		})
	}
	return g.deny(ctx, ReasonTenantMismatch, zap.String("user_id", identity.UserID), zap.String("own_tenant", own.Slug))
}

// VerifySuperAdmin authorizes assigned super admins. While none exists,
// the first identity without an admin profile claims the role.
func (g *Gate) VerifySuperAdmin(ctx context.Context, identity *Identity) Decision {
	if identity == nil || identity.UserID == "" {
		return g.deny(ctx, ReasonUnauthenticated)
	}
	log := contextutil.GetLogger(ctx, g.logger).With(zap.String("user_id", identity.UserID))
	log.Debug("access state", zap.Stringer("state", Verifying))

	ok, err := g.superAdmins.IsSuperAdmin(ctx, identity.UserID)
	if err != nil {
		return g.deny(ctx, ReasonError, zap.Error(err))
	}
	if ok {
		return Decision{State: Authorized, Role: superadmin.RoleSuperAdmin}
	}

	exists, err := g.superAdmins.AnyExists(ctx)
	if err != nil {
		return g.deny(ctx, ReasonError, zap.Error(err))
	}
	if exists {
		return g.deny(ctx, ReasonNotSuperAdmin, zap.String("user_id", identity.UserID))
	}

	_, err = g.profiles.GetProfile(ctx, identity.UserID)
	switch {
	case err == nil:
		return g.deny(ctx, ReasonNotSuperAdmin, zap.String("user_id", identity.UserID))
	case !errors.Is(err, adminusererrors.ErrAdminNotFound):
		return g.deny(ctx, ReasonError, zap.Error(err))
	}

	if _, err := g.superAdmins.Bootstrap(ctx, identity.UserID, identity.Email); err != nil {
		if errors.Is(err, superadminerrors.ErrBootstrapRejected) {
			return g.deny(ctx, ReasonBootstrapRejected, zap.String("user_id", identity.UserID))
		}
		return g.deny(ctx, ReasonError, zap.Error(err))
	}

	log.Info("super admin bootstrapped through gate")
	return Decision{State: Authorized, Role: superadmin.RoleSuperAdmin, Bootstrapped: true}
}
