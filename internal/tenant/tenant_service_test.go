package tenant_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"go-kafe/internal/bootstrap"
	"go-kafe/internal/tenant"
	tenanterrors "go-kafe/internal/tenant/errors"
	tenantMock "go-kafe/internal/tenant/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingAudit struct {
	logs []bootstrap.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, l bootstrap.AuditLog) {
	r.logs = append(r.logs, l)
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service tenant.Service
	repo    *tenantMock.MockRepository
	audit   *recordingAudit
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	repo := tenantMock.NewMockRepository(ctrl)
	audit := &recordingAudit{}

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: tenant.NewService(db, repo, audit, zap.NewNop()),
		repo:    repo,
		audit:   audit,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestTenantService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("derives slug and a 4 digit token", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteAlias(ctx, "kopi-kenangan").Return(nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, tenant.CreateTenantRequest{Name: "Kopi Kenangan"})

		require.NoError(t, err)
		assert.Equal(t, "kopi-kenangan", resp.Slug)
		assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), resp.DailyToken)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		if assert.Len(t, deps.audit.logs, 1) {
			assert.Equal(t, bootstrap.AuditTenantCreated, deps.audit.logs[0].Action)
		}
	})

	t.Run("duplicate slug", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteAlias(ctx, "kopi-kenangan").Return(nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "tenants_slug_key"})

		_, err := deps.service.Create(ctx, tenant.CreateTenantRequest{Name: "Kopi  Kenangan"})

		assert.ErrorIs(t, err, tenanterrors.ErrTenantSlugTaken)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.Empty(t, deps.audit.logs)
	})

	t.Run("name without letters or digits", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, tenant.CreateTenantRequest{Name: "!!!"})

		assert.ErrorIs(t, err, tenanterrors.ErrInvalidTenantName)
	})
}

func TestTenantService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	existing := func() *tenant.Tenant {
		return &tenant.Tenant{ID: id, Name: "Kopi Lama", Slug: "kopi-lama", DailyToken: "1234"}
	}

	t.Run("rename keeps the old slug as alias", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing(), nil)
		deps.repo.EXPECT().DeleteAlias(ctx, "kopi-baru").Return(nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().SaveAlias(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *tenant.SlugAlias) error {
			assert.Equal(t, "kopi-lama", a.Slug)
			assert.Equal(t, id, a.TenantID)
			return nil
		})
		deps.repo.EXPECT().RefreshProfileTenantName(ctx, id.String(), "Kopi Baru").Return(nil)

		resp, err := deps.service.Update(ctx, id.String(), tenant.UpdateTenantRequest{Name: "Kopi Baru"})

		require.NoError(t, err)
		assert.Equal(t, "kopi-baru", resp.Slug)
		assert.Equal(t, "1234", resp.DailyToken)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		if assert.Len(t, deps.audit.logs, 1) {
			assert.Equal(t, bootstrap.AuditTenantRenamed, deps.audit.logs[0].Action)
		}
	})

	t.Run("same slug writes no alias", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing(), nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().RefreshProfileTenantName(ctx, id.String(), "KOPI lama").Return(nil)

		_, err := deps.service.Update(ctx, id.String(), tenant.UpdateTenantRequest{Name: "KOPI lama"})

		require.NoError(t, err)
		assert.Empty(t, deps.audit.logs)
	})

	t.Run("profile refresh failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing(), nil)
		deps.repo.EXPECT().DeleteAlias(ctx, "kopi-baru").Return(nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().SaveAlias(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().RefreshProfileTenantName(ctx, id.String(), "Kopi Baru").Return(errors.New("deadlock"))

		_, err := deps.service.Update(ctx, id.String(), tenant.UpdateTenantRequest{Name: "Kopi Baru"})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, "nope", tenant.UpdateTenantRequest{Name: "Kopi"})

		assert.ErrorIs(t, err, tenanterrors.ErrInvalidTenantID)
	})
}

func TestTenantService_ResolveBySlug(t *testing.T) {
	ctx := context.Background()
	found := &tenant.Tenant{ID: uuid.New(), Name: "Kopi Baru", Slug: "kopi-baru", DailyToken: "0042"}

	t.Run("exact slug", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindBySlug(ctx, "kopi-baru").Return(found, nil)

		res, err := deps.service.ResolveBySlug(ctx, "kopi-baru")

		require.NoError(t, err)
		assert.True(t, res.Canonical)
		assert.Equal(t, found.ID, res.Tenant.ID)
	})

	t.Run("historic alias", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindBySlug(ctx, "kopi-lama").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().FindByAlias(ctx, "kopi-lama").Return(found, nil)

		res, err := deps.service.ResolveBySlug(ctx, "kopi-lama")

		require.NoError(t, err)
		assert.False(t, res.Canonical)
		assert.Equal(t, "kopi-baru", res.Tenant.Slug)
	})

	t.Run("unknown slug", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindBySlug(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().FindByAlias(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ResolveBySlug(ctx, "ghost")

		assert.ErrorIs(t, err, tenanterrors.ErrTenantNotFound)
	})

	t.Run("store failure is not reported as not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindBySlug(ctx, "kopi-baru").Return(nil, errors.New("connection refused"))

		_, err := deps.service.ResolveBySlug(ctx, "kopi-baru")

		assert.ErrorIs(t, err, tenanterrors.ErrTenantLoadFailed)
		assert.NotErrorIs(t, err, tenanterrors.ErrTenantNotFound)
	})
}

func TestTenantService_RotateDailyToken(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("explicit token", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).
			Return(&tenant.Tenant{ID: id, Name: "K", Slug: "k", DailyToken: "1111"}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.RotateDailyToken(ctx, id.String(), tenant.RotateDailyTokenRequest{Token: "0007"})

		require.NoError(t, err)
		assert.Equal(t, "0007", resp.DailyToken)
		if assert.Len(t, deps.audit.logs, 1) {
			assert.Equal(t, bootstrap.AuditDailyTokenRotated, deps.audit.logs[0].Action)
		}
	})

	t.Run("random token", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id.String()).
			Return(&tenant.Tenant{ID: id, Name: "K", Slug: "k", DailyToken: "1111"}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.RotateDailyToken(ctx, id.String(), tenant.RotateDailyTokenRequest{})

		require.NoError(t, err)
		assert.Regexp(t, `^\d{4}$`, resp.DailyToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.RotateDailyToken(ctx, id.String(), tenant.RotateDailyTokenRequest{Token: "12a4"})

		assert.ErrorIs(t, err, tenanterrors.ErrInvalidDailyToken)
	})
}

func TestTenantService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("still has admins", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Delete(ctx, id).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "admin_profiles_tenant_id_fkey"})

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, tenanterrors.ErrTenantInUse)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Delete(ctx, id).Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, tenanterrors.ErrTenantNotFound)
	})
}
