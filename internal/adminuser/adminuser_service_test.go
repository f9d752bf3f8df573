package adminuser_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go-kafe/internal/adminuser"
	adminusererrors "go-kafe/internal/adminuser/errors"
	adminuserMock "go-kafe/internal/adminuser/mock"
	"go-kafe/internal/auth"
	"go-kafe/internal/tenant"
	tenanterrors "go-kafe/internal/tenant/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeRepository keeps sagas and profiles in memory so tests can assert
// on saga state after each step.
type fakeRepository struct {
	mu       sync.Mutex
	sagas    map[string]adminuser.ProvisioningSaga
	profiles map[string]adminuser.AdminProfile

	createProfileFn func(p *adminuser.AdminProfile) error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		sagas:    map[string]adminuser.ProvisioningSaga{},
		profiles: map[string]adminuser.AdminProfile{},
	}
}

func (f *fakeRepository) CreateProfile(_ context.Context, p *adminuser.AdminProfile) error {
	if f.createProfileFn != nil {
		if err := f.createProfileFn(p); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[p.ID.String()]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: "admin_profiles_pkey"}
	}
	f.profiles[p.ID.String()] = *p
	return nil
}

func (f *fakeRepository) FindProfileByID(_ context.Context, id string) (*adminuser.AdminProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeRepository) FindAllProfiles(context.Context) ([]adminuser.AdminProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]adminuser.AdminProfile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepository) DeleteProfile(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.profiles, id)
	return nil
}

func (f *fakeRepository) FindSaga(_ context.Context, id string) (*adminuser.ProvisioningSaga, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sagas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (f *fakeRepository) SaveSaga(_ context.Context, saga *adminuser.ProvisioningSaga) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sagas[saga.ID] = *saga
	return nil
}

func (f *fakeRepository) FindSagasByState(_ context.Context, state string, limit int) ([]adminuser.ProvisioningSaga, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []adminuser.ProvisioningSaga
	for _, s := range f.sagas {
		if s.State == state && len(out) < limit {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepository) state(id string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sagas[id].State
}

type sagaDeps struct {
	repo       *fakeRepository
	identities *adminuserMock.MockIdentityProvider
	tenants    *adminuserMock.MockTenantLookup
	service    adminuser.Service
	kafe       *tenant.Tenant
}

func setupSaga(t *testing.T) *sagaDeps {
	ctrl := gomock.NewController(t)
	repo := newFakeRepository()
	identities := adminuserMock.NewMockIdentityProvider(ctrl)
	tenants := adminuserMock.NewMockTenantLookup(ctrl)
	kafe := &tenant.Tenant{ID: uuid.New(), Name: "Kopi Kenangan", Slug: "kopi-kenangan", DailyToken: "1234"}

	tenants.EXPECT().GetByID(gomock.Any(), kafe.ID.String()).Return(kafe, nil).AnyTimes()

	return &sagaDeps{
		repo:       repo,
		identities: identities,
		tenants:    tenants,
		service:    adminuser.NewService(repo, identities, tenants, nil, zap.NewNop()),
		kafe:       kafe,
	}
}

func (d *sagaDeps) request() adminuser.ProvisionAdminRequest {
	return adminuser.ProvisionAdminRequest{
		Email:    "Barista@Kafe.id",
		Password: "longenough",
		TenantID: d.kafe.ID.String(),
	}
}

func TestProvision_HappyPath(t *testing.T) {
	d := setupSaga(t)
	ctx := context.Background()
	identityID := uuid.New()

	d.identities.EXPECT().CreateIdentity(ctx, "barista@kafe.id", "longenough").
		Return(&auth.Identity{ID: identityID, Email: "barista@kafe.id"}, nil)

	resp, err := d.service.Provision(ctx, "key-1", d.request())

	require.NoError(t, err)
	assert.Equal(t, identityID.String(), resp.ID)
	assert.Equal(t, "Kopi Kenangan", resp.TenantName)
	assert.Equal(t, adminuser.RoleAdminKafe, resp.Role)
	assert.Equal(t, adminuser.SagaCompleted, d.repo.state("key-1"))

	t.Run("replay returns the same admin without a second identity", func(t *testing.T) {
		again, err := d.service.Provision(ctx, "key-1", d.request())

		require.NoError(t, err)
		assert.Equal(t, resp.ID, again.ID)
	})

	t.Run("same key for a different request", func(t *testing.T) {
		req := d.request()
		req.Email = "other@kafe.id"

		_, err := d.service.Provision(ctx, "key-1", req)

		assert.ErrorIs(t, err, adminusererrors.ErrIdempotencyKeyReused)
	})
}

func TestProvision_UnknownTenantCreatesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := newFakeRepository()
	identities := adminuserMock.NewMockIdentityProvider(ctrl)
	tenants := adminuserMock.NewMockTenantLookup(ctrl)
	svc := adminuser.NewService(repo, identities, tenants, nil, zap.NewNop())

	missing := uuid.NewString()
	tenants.EXPECT().GetByID(gomock.Any(), missing).Return(nil, tenanterrors.ErrTenantNotFound)

	_, err := svc.Provision(context.Background(), "key-x", adminuser.ProvisionAdminRequest{
		Email: "a@kafe.id", Password: "longenough", TenantID: missing,
	})

	assert.ErrorIs(t, err, tenanterrors.ErrTenantNotFound)
	assert.Empty(t, repo.sagas)
}

func TestProvision_ProfileFailureCompensates(t *testing.T) {
	d := setupSaga(t)
	ctx := context.Background()
	identityID := uuid.New()

	d.repo.createProfileFn = func(*adminuser.AdminProfile) error { return errors.New("insert failed") }
	d.identities.EXPECT().CreateIdentity(ctx, gomock.Any(), gomock.Any()).
		Return(&auth.Identity{ID: identityID}, nil)
	d.identities.EXPECT().DeleteIdentity(ctx, identityID.String()).Return(nil)

	_, err := d.service.Provision(ctx, "key-2", d.request())

	assert.ErrorIs(t, err, adminusererrors.ErrProvisioningFailed)
	assert.Equal(t, adminuser.SagaCompensated, d.repo.state("key-2"))

	t.Run("a compensated saga runs again on replay", func(t *testing.T) {
		d.repo.createProfileFn = nil
		retryID := uuid.New()
		d.identities.EXPECT().CreateIdentity(ctx, gomock.Any(), gomock.Any()).
			Return(&auth.Identity{ID: retryID}, nil)

		resp, err := d.service.Provision(ctx, "key-2", d.request())

		require.NoError(t, err)
		assert.Equal(t, retryID.String(), resp.ID)
		assert.Equal(t, adminuser.SagaCompleted, d.repo.state("key-2"))
	})
}

func TestProvision_CompensationFailure(t *testing.T) {
	d := setupSaga(t)
	ctx := context.Background()
	identityID := uuid.New()

	d.repo.createProfileFn = func(*adminuser.AdminProfile) error { return errors.New("insert failed") }
	d.identities.EXPECT().CreateIdentity(ctx, gomock.Any(), gomock.Any()).
		Return(&auth.Identity{ID: identityID}, nil)
	d.identities.EXPECT().DeleteIdentity(ctx, identityID.String()).Return(errors.New("idp down"))

	_, err := d.service.Provision(ctx, "key-3", d.request())

	assert.ErrorIs(t, err, adminusererrors.ErrProvisioningFailed)
	assert.Equal(t, adminuser.SagaCompensationFailed, d.repo.state("key-3"))

	t.Run("replay waits for cleanup", func(t *testing.T) {
		_, err := d.service.Provision(ctx, "key-3", d.request())
		assert.ErrorIs(t, err, adminusererrors.ErrProvisioningPending)
	})

	t.Run("worker retry finishes the compensation", func(t *testing.T) {
		d.identities.EXPECT().DeleteIdentity(gomock.Any(), identityID.String()).Return(nil)

		n, err := d.service.RetryCompensations(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, adminuser.SagaCompensated, d.repo.state("key-3"))
	})
}

func TestProvision_ResumesAfterIdentityCreated(t *testing.T) {
	d := setupSaga(t)
	ctx := context.Background()
	identityID := uuid.New()

	require.NoError(t, d.repo.SaveSaga(ctx, &adminuser.ProvisioningSaga{
		ID:         "key-4",
		Email:      "barista@kafe.id",
		TenantID:   d.kafe.ID,
		IdentityID: &identityID,
		State:      adminuser.SagaIdentityCreated,
	}))

	// no CreateIdentity expectation: the identity already exists
	resp, err := d.service.Provision(ctx, "key-4", d.request())

	require.NoError(t, err)
	assert.Equal(t, identityID.String(), resp.ID)
	assert.Equal(t, adminuser.SagaCompleted, d.repo.state("key-4"))
}

func TestService_Delete(t *testing.T) {
	d := setupSaga(t)
	ctx := context.Background()
	id := uuid.New()
	tid := d.kafe.ID
	d.repo.profiles[id.String()] = adminuser.AdminProfile{ID: id, Email: "a@kafe.id", Role: adminuser.RoleAdminKafe, TenantID: &tid}

	d.identities.EXPECT().DeleteIdentity(ctx, id.String()).Return(nil)

	require.NoError(t, d.service.Delete(ctx, id.String()))
	assert.Empty(t, d.repo.profiles)

	err := d.service.Delete(ctx, id.String())
	assert.ErrorIs(t, err, adminusererrors.ErrAdminNotFound)
}
