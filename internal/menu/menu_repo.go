package menu

import (
	"context"

	"go-kafe/internal/shared/storecheck"
	"go-kafe/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=menu_repo.go -destination=mock/menu_repo_mock.go -package=mock
type Repository interface {
	FindCategories(ctx context.Context, tenantID string) ([]Category, error)
	FindCategoryByID(ctx context.Context, tenantID, id string) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, tenantID, id string) error
	CountMenusInCategory(ctx context.Context, tenantID, categoryID string) (int64, error)

	FindMenus(ctx context.Context, tenantID string, onlyAvailable bool) ([]Menu, error)
	FindMenuByID(ctx context.Context, tenantID, id string) (*Menu, error)
	CreateMenu(ctx context.Context, m *Menu) error
	UpdateMenu(ctx context.Context, m *Menu) error
	DeleteMenu(ctx context.Context, tenantID, id string) error
	SetAvailability(ctx context.Context, tenantID, id string, available bool) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindCategories(ctx context.Context, tenantID string) ([]Category, error) {
	var cs []Category
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Order("name ASC").
		Find(&cs).Error
	if err != nil {
		return nil, err
	}
	return cs, storecheck.CheckAll(cs)
}

func (r *repository) FindCategoryByID(ctx context.Context, tenantID, id string) (*Category, error) {
	var c Category
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, storecheck.Check(&c)
}

func (r *repository) CreateCategory(ctx context.Context, c *Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) UpdateCategory(ctx context.Context, c *Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) DeleteCategory(ctx context.Context, tenantID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Delete(&Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountMenusInCategory(ctx context.Context, tenantID, categoryID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Menu{}).
		Scopes(tenant.Scope(tenantID)).
		Where("category_id = ?", categoryID).
		Count(&n).Error
	return n, err
}

func (r *repository) withCategory(ctx context.Context, tenantID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Menu{}).
		Select("menus.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = menus.category_id").
		Scopes(tenant.ScopeTable("menus", tenantID))
}

func (r *repository) FindMenus(ctx context.Context, tenantID string, onlyAvailable bool) ([]Menu, error) {
	q := r.withCategory(ctx, tenantID)
	if onlyAvailable {
		q = q.Where("menus.available = ?", true)
	}

	var ms []Menu
	if err := q.Order("categories.name ASC, menus.name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, storecheck.CheckAll(ms)
}

func (r *repository) FindMenuByID(ctx context.Context, tenantID, id string) (*Menu, error) {
	var m Menu
	if err := r.withCategory(ctx, tenantID).Where("menus.id = ?", id).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, storecheck.Check(&m)
}

func (r *repository) CreateMenu(ctx context.Context, m *Menu) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) UpdateMenu(ctx context.Context, m *Menu) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repository) DeleteMenu(ctx context.Context, tenantID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Delete(&Menu{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) SetAvailability(ctx context.Context, tenantID, id string, available bool) error {
	res := r.db.WithContext(ctx).
		Model(&Menu{}).
		Scopes(tenant.Scope(tenantID)).
		Where("id = ?", id).
		Updates(map[string]any{"available": available, "updated_at": gorm.Expr("NOW()")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
