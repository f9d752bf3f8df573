package report

import (
	"context"
	"time"

	"go-kafe/internal/shared/storecheck"
	"go-kafe/internal/tenant"

	"gorm.io/gorm"
)

type PageQuery struct {
	TenantID string
	Start    time.Time
	End      time.Time
	// After returns rows older than the cursor, newest first. Before
	// returns rows newer than the cursor, oldest first. At most one is set.
	After  *Cursor
	Before *Cursor
	Limit  int
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	FindBetween(ctx context.Context, tenantID string, start, end time.Time) ([]OrderRow, error)
	FindPage(ctx context.Context, q PageQuery) ([]OrderRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) base(ctx context.Context, tenantID string, start, end time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders").
		Select("id, order_number, table_number, total_amount, status, payment_method, payment_verified, created_at").
		Scopes(tenant.Scope(tenantID)).
		Where("created_at >= ? AND created_at <= ?", start, end)
}

func (r *repository) FindBetween(ctx context.Context, tenantID string, start, end time.Time) ([]OrderRow, error) {
	var rows []OrderRow
	err := r.base(ctx, tenantID, start, end).
		Order("created_at DESC, id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, storecheck.CheckAll(rows)
}

func (r *repository) FindPage(ctx context.Context, q PageQuery) ([]OrderRow, error) {
	db := r.base(ctx, q.TenantID, q.Start, q.End)
	switch {
	case q.Before != nil:
		db = db.Where("(created_at, id) > (?, ?)", q.Before.CreatedAt, q.Before.ID).
			Order("created_at ASC, id ASC")
	case q.After != nil:
		db = db.Where("(created_at, id) < (?, ?)", q.After.CreatedAt, q.After.ID).
			Order("created_at DESC, id DESC")
	default:
		db = db.Order("created_at DESC, id DESC")
	}

	var rows []OrderRow
	if err := db.Limit(q.Limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, storecheck.CheckAll(rows)
}
