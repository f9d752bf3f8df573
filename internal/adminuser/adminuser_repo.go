package adminuser

import (
	"context"

	"go-kafe/internal/shared/storecheck"

	"gorm.io/gorm"
)

//go:generate mockgen -source=adminuser_repo.go -destination=mock/adminuser_repo_mock.go -package=mock
type Repository interface {
	CreateProfile(ctx context.Context, p *AdminProfile) error
	FindProfileByID(ctx context.Context, id string) (*AdminProfile, error)
	FindAllProfiles(ctx context.Context) ([]AdminProfile, error)
	DeleteProfile(ctx context.Context, id string) error

	FindSaga(ctx context.Context, id string) (*ProvisioningSaga, error)
	SaveSaga(ctx context.Context, saga *ProvisioningSaga) error
	FindSagasByState(ctx context.Context, state string, limit int) ([]ProvisioningSaga, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// withTenantName reads tenant_name from tenants rather than the stored copy.
func (r *repository) withTenantName(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&AdminProfile{}).
		Select("admin_profiles.id, admin_profiles.email, admin_profiles.role, admin_profiles.tenant_id, " +
			"COALESCE(tenants.name, admin_profiles.tenant_name) AS tenant_name, admin_profiles.created_at").
		Joins("LEFT JOIN tenants ON tenants.id = admin_profiles.tenant_id")
}

func (r *repository) CreateProfile(ctx context.Context, p *AdminProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindProfileByID(ctx context.Context, id string) (*AdminProfile, error) {
	var p AdminProfile
	if err := r.withTenantName(ctx).Where("admin_profiles.id = ?", id).Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, storecheck.Check(&p)
}

func (r *repository) FindAllProfiles(ctx context.Context) ([]AdminProfile, error) {
	var ps []AdminProfile
	if err := r.withTenantName(ctx).Order("admin_profiles.created_at DESC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, storecheck.CheckAll(ps)
}

func (r *repository) DeleteProfile(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&AdminProfile{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindSaga(ctx context.Context, id string) (*ProvisioningSaga, error) {
	var s ProvisioningSaga
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, storecheck.Check(&s)
}

func (r *repository) SaveSaga(ctx context.Context, saga *ProvisioningSaga) error {
	return r.db.WithContext(ctx).Save(saga).Error
}

func (r *repository) FindSagasByState(ctx context.Context, state string, limit int) ([]ProvisioningSaga, error) {
	var sagas []ProvisioningSaga
	err := r.db.WithContext(ctx).
		Where("state = ?", state).
		Order("updated_at ASC").
		Limit(limit).
		Find(&sagas).Error
	if err != nil {
		return nil, err
	}
	return sagas, storecheck.CheckAll(sagas)
}
