package tenant

import (
	"context"
	"database/sql"

	"go-kafe/internal/shared/dbtx"
	"go-kafe/internal/shared/storecheck"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=tenant_repo.go -destination=mock/tenant_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Tenant) error
	FindAll(ctx context.Context) ([]Tenant, error)
	FindByID(ctx context.Context, id string) (*Tenant, error)
	FindBySlug(ctx context.Context, slug string) (*Tenant, error)
	FindByAlias(ctx context.Context, slug string) (*Tenant, error)
	Update(ctx context.Context, t *Tenant) error
	Delete(ctx context.Context, id string) error
	SaveAlias(ctx context.Context, alias *SlugAlias) error
	DeleteAlias(ctx context.Context, slug string) error
	RefreshProfileTenantName(ctx context.Context, tenantID, name string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, t *Tenant) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Tenant, error) {
	var tenants []Tenant
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&tenants).Error
	if err != nil {
		return nil, err
	}
	return tenants, storecheck.CheckAll(tenants)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Tenant, error) {
	var t Tenant
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, storecheck.Check(&t)
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*Tenant, error) {
	var t Tenant
	if err := r.db.WithContext(ctx).First(&t, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &t, storecheck.Check(&t)
}

func (r *repository) FindByAlias(ctx context.Context, slug string) (*Tenant, error) {
	var t Tenant
	err := r.db.WithContext(ctx).
		Joins("JOIN tenant_slug_aliases a ON a.tenant_id = tenants.id").
		Where("a.slug = ?", slug).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, storecheck.Check(&t)
}

func (r *repository) Update(ctx context.Context, t *Tenant) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Tenant{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SaveAlias points slug at the tenant, taking it over from whichever
// tenant held it before.
func (r *repository) SaveAlias(ctx context.Context, alias *SlugAlias) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"tenant_id", "created_at"}),
		}).
		Create(alias).Error
}

func (r *repository) DeleteAlias(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Delete(&SlugAlias{}, "slug = ?", slug).Error
}

func (r *repository) RefreshProfileTenantName(ctx context.Context, tenantID, name string) error {
	return r.db.WithContext(ctx).
		Table("admin_profiles").
		Where("tenant_id = ?", tenantID).
		Update("tenant_name", name).Error
}
