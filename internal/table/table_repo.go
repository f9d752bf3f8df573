package table

import (
	"context"

	"go-kafe/internal/shared/storecheck"
	"go-kafe/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=table_repo.go -destination=mock/table_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, tenantID string) ([]Table, error)
	FindByID(ctx context.Context, tenantID, id string) (*Table, error)
	Create(ctx context.Context, t *Table) error
	Update(ctx context.Context, t *Table) error
	Delete(ctx context.Context, tenantID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, tenantID string) ([]Table, error) {
	var ts []Table
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Order("table_number ASC").
		Find(&ts).Error
	if err != nil {
		return nil, err
	}
	return ts, storecheck.CheckAll(ts)
}

func (r *repository) FindByID(ctx context.Context, tenantID, id string) (*Table, error) {
	var t Table
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, storecheck.Check(&t)
}

func (r *repository) Create(ctx context.Context, t *Table) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Update(ctx context.Context, t *Table) error {
	return r.db.WithContext(ctx).
		Model(&Table{}).
		Scopes(tenant.Scope(t.TenantID.String())).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"table_number": t.TableNumber,
			"status":       t.Status,
			"updated_at":   t.UpdatedAt,
		}).Error
}

func (r *repository) Delete(ctx context.Context, tenantID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Delete(&Table{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
