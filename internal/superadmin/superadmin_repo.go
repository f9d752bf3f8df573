package superadmin

import (
	"context"

	"go-kafe/internal/shared/storecheck"

	"gorm.io/gorm"
)

//go:generate mockgen -source=superadmin_repo.go -destination=mock/superadmin_repo_mock.go -package=mock
type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*SuperAdminRole, error)
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context, role *SuperAdminRole) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUserID(ctx context.Context, userID string) (*SuperAdminRole, error) {
	var role SuperAdminRole
	if err := r.db.WithContext(ctx).First(&role, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &role, storecheck.Check(&role)
}

func (r *repository) Exists(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SuperAdminRole{}).Limit(1).Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, role *SuperAdminRole) error {
	return r.db.WithContext(ctx).Create(role).Error
}
