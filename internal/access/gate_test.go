package access_test

import (
	"context"
	"errors"
	"testing"

	"go-kafe/internal/access"
	accessMock "go-kafe/internal/access/mock"
	"go-kafe/internal/adminuser"
	adminusererrors "go-kafe/internal/adminuser/errors"
	"go-kafe/internal/diagnostics"
	"go-kafe/internal/superadmin"
	superadminerrors "go-kafe/internal/superadmin/errors"
	"go-kafe/internal/tenant"
	tenanterrors "go-kafe/internal/tenant/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type gateDeps struct {
	profiles    *accessMock.MockProfileLookup
	tenants     *accessMock.MockTenantStore
	superAdmins *accessMock.MockSuperAdmins
	emitter     *diagnostics.Emitter
	gate        *access.Gate
}

func setupGate(t *testing.T) *gateDeps {
	ctrl := gomock.NewController(t)
	d := &gateDeps{
		profiles:    accessMock.NewMockProfileLookup(ctrl),
		tenants:     accessMock.NewMockTenantStore(ctrl),
		superAdmins: accessMock.NewMockSuperAdmins(ctrl),
		emitter:     diagnostics.NewEmitter(zap.NewNop()),
	}
	d.gate = access.NewGate(d.profiles, d.tenants, d.superAdmins, d.emitter, zap.NewNop())
	return d
}

func adminOf(t *tenant.Tenant, userID string) *adminuser.AdminProfile {
	id := uuid.MustParse(userID)
	tid := t.ID
	return &adminuser.AdminProfile{ID: id, Email: "a@kafe.id", Role: adminuser.RoleAdminKafe, TenantID: &tid}
}

func TestVerifyTenantAdmin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	identity := &access.Identity{UserID: userID, Email: "a@kafe.id"}
	own := &tenant.Tenant{ID: uuid.New(), Name: "Kopi Baru", Slug: "kopi-baru"}
	other := &tenant.Tenant{ID: uuid.New(), Name: "Kopi Lain", Slug: "kopi-lain"}

	t.Run("no identity", func(t *testing.T) {
		d := setupGate(t)
		dec := d.gate.VerifyTenantAdmin(ctx, nil, "kopi-baru")
		assert.Equal(t, access.Denied, dec.State)
		assert.Equal(t, access.ReasonUnauthenticated, dec.Reason)
	})

	t.Run("own tenant", func(t *testing.T) {
		d := setupGate(t)
		d.profiles.EXPECT().GetProfile(ctx, userID).Return(adminOf(own, userID), nil)
		d.tenants.EXPECT().GetByID(ctx, own.ID.String()).Return(own, nil)

		dec := d.gate.VerifyTenantAdmin(ctx, identity, "kopi-baru")

		assert.Equal(t, access.Authorized, dec.State)
		assert.Equal(t, own.ID, dec.Tenant.ID)
		assert.False(t, dec.NeedsRedirect())
	})

	t.Run("stale slug of own tenant redirects", func(t *testing.T) {
		d := setupGate(t)
		d.profiles.EXPECT().GetProfile(ctx, userID).Return(adminOf(own, userID), nil)
		d.tenants.EXPECT().GetByID(ctx, own.ID.String()).Return(own, nil)
		d.tenants.EXPECT().ResolveBySlug(ctx, "kopi-lama").Return(tenant.Resolution{Tenant: own, Canonical: false}, nil)

		dec := d.gate.VerifyTenantAdmin(ctx, identity, "kopi-lama")

		assert.Equal(t, access.Authorized, dec.State)
		assert.True(t, dec.NeedsRedirect())
		assert.Equal(t, "kopi-baru", dec.CanonicalSlug)
	})

	t.Run("another tenant's slug", func(t *testing.T) {
		d := setupGate(t)
		events, cancel := d.emitter.Subscribe()
		defer cancel()
		d.profiles.EXPECT().GetProfile(ctx, userID).Return(adminOf(own, userID), nil)
		d.tenants.EXPECT().GetByID(ctx, own.ID.String()).Return(own, nil)
		d.tenants.EXPECT().ResolveBySlug(ctx, "kopi-lain").Return(tenant.Resolution{Tenant: other, Canonical: true}, nil)

		dec := d.gate.VerifyTenantAdmin(ctx, identity, "kopi-lain")

		assert.Equal(t, access.Denied, dec.State)
		assert.Equal(t, access.ReasonTenantMismatch, dec.Reason)
		assert.Len(t, events, 1)
	})

	t.Run("unknown slug", func(t *testing.T) {
		d := setupGate(t)
		d.profiles.EXPECT().GetProfile(ctx, userID).Return(adminOf(own, userID), nil)
		d.tenants.EXPECT().GetByID(ctx, own.ID.String()).Return(own, nil)
		d.tenants.EXPECT().ResolveBySlug(ctx, "ghost").Return(tenant.Resolution{}, tenanterrors.ErrTenantNotFound)

		dec := d.gate.VerifyTenantAdmin(ctx, identity, "ghost")

		assert.Equal(t, access.ReasonTenantMismatch, dec.Reason)
	})

	t.Run("no profile", func(t *testing.T) {
		d := setupGate(t)
		d.profiles.EXPECT().GetProfile(ctx, userID).Return(nil, adminusererrors.ErrAdminNotFound)

		dec := d.gate.VerifyTenantAdmin(ctx, identity, "kopi-baru")

		assert.Equal(t, access.ReasonNoProfile, dec.Reason)
	})

	t.Run("profile without tenant", func(t *testing.T) {
		d := setupGate(t)
		d.profiles.EXPECT().GetProfile(ctx, userID).
			Return(&adminuser.AdminProfile{ID: uuid.MustParse(userID), Role: adminuser.RoleAdminKafe}, nil)

		dec := d.gate.VerifyTenantAdmin(ctx, identity, "kopi-baru")

		assert.Equal(t, access.ReasonNoTenant, dec.Reason)
	})

	t.Run("tenant was deleted", func(t *testing.T) {
		d := setupGate(t)
		d.profiles.EXPECT().GetProfile(ctx, userID).Return(adminOf(own, userID), nil)
		d.tenants.EXPECT().GetByID(ctx, own.ID.String()).Return(nil, tenanterrors.ErrTenantNotFound)

		dec := d.gate.VerifyTenantAdmin(ctx, identity, "kopi-baru")

		assert.Equal(t, access.ReasonTenantMissing, dec.Reason)
	})

	t.Run("store failure denies", func(t *testing.T) {
		d := setupGate(t)
		d.profiles.EXPECT().GetProfile(ctx, userID).Return(nil, errors.New("timeout"))

		dec := d.gate.VerifyTenantAdmin(ctx, identity, "kopi-baru")

		assert.Equal(t, access.Denied, dec.State)
		assert.Equal(t, access.ReasonError, dec.Reason)
	})
}

func TestVerifySuperAdmin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	identity := &access.Identity{UserID: userID, Email: "root@kafe.id"}

	t.Run("assigned", func(t *testing.T) {
		d := setupGate(t)
		d.superAdmins.EXPECT().IsSuperAdmin(ctx, userID).Return(true, nil)

		dec := d.gate.VerifySuperAdmin(ctx, identity)

		assert.Equal(t, access.Authorized, dec.State)
		assert.Equal(t, superadmin.RoleSuperAdmin, dec.Role)
	})

	t.Run("bootstrap when none exists", func(t *testing.T) {
		d := setupGate(t)
		d.superAdmins.EXPECT().IsSuperAdmin(ctx, userID).Return(false, nil)
		d.superAdmins.EXPECT().AnyExists(ctx).Return(false, nil)
		d.profiles.EXPECT().GetProfile(ctx, userID).Return(nil, adminusererrors.ErrAdminNotFound)
		d.superAdmins.EXPECT().Bootstrap(ctx, userID, "root@kafe.id").Return(&superadmin.SuperAdminRole{}, nil)

		dec := d.gate.VerifySuperAdmin(ctx, identity)

		assert.Equal(t, access.Authorized, dec.State)
		assert.True(t, dec.Bootstrapped)
	})

	t.Run("lost the bootstrap race", func(t *testing.T) {
		d := setupGate(t)
		d.superAdmins.EXPECT().IsSuperAdmin(ctx, userID).Return(false, nil)
		d.superAdmins.EXPECT().AnyExists(ctx).Return(false, nil)
		d.profiles.EXPECT().GetProfile(ctx, userID).Return(nil, adminusererrors.ErrAdminNotFound)
		d.superAdmins.EXPECT().Bootstrap(ctx, userID, "root@kafe.id").Return(nil, superadminerrors.ErrBootstrapRejected)

		dec := d.gate.VerifySuperAdmin(ctx, identity)

		assert.Equal(t, access.Denied, dec.State)
		assert.Equal(t, access.ReasonBootstrapRejected, dec.Reason)
	})

	t.Run("tenant admins never bootstrap", func(t *testing.T) {
		d := setupGate(t)
		d.superAdmins.EXPECT().IsSuperAdmin(ctx, userID).Return(false, nil)
		d.superAdmins.EXPECT().AnyExists(ctx).Return(false, nil)
		d.profiles.EXPECT().GetProfile(ctx, userID).Return(&adminuser.AdminProfile{Role: adminuser.RoleAdminKafe}, nil)

		dec := d.gate.VerifySuperAdmin(ctx, identity)

		assert.Equal(t, access.ReasonNotSuperAdmin, dec.Reason)
	})

	t.Run("someone else already holds the role", func(t *testing.T) {
		d := setupGate(t)
		d.superAdmins.EXPECT().IsSuperAdmin(ctx, userID).Return(false, nil)
		d.superAdmins.EXPECT().AnyExists(ctx).Return(true, nil)

		dec := d.gate.VerifySuperAdmin(ctx, identity)

		assert.Equal(t, access.ReasonNotSuperAdmin, dec.Reason)
	})
}
