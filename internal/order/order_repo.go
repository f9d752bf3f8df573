package order

import (
	"context"
	"database/sql"

	"go-kafe/internal/shared/dbtx"
	"go-kafe/internal/shared/storecheck"
	"go-kafe/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=order_repo.go -destination=mock/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindTableNumber(ctx context.Context, tenantID, tableID string) (int, error)
	FindAvailableMenus(ctx context.Context, tenantID string, ids []string) ([]MenuSnapshot, error)

	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, tenantID, id string) (*Order, error)
	LockByID(ctx context.Context, tenantID, id string) (*Order, error)
	FindAll(ctx context.Context, tenantID, status string) ([]Order, error)
	UpdateStatus(ctx context.Context, o *Order) error
	UpdatePaymentVerified(ctx context.Context, o *Order) error

	FindEvents(ctx context.Context, tenantID, orderID string) ([]OrderEvent, error)
	// RecordEvent inserts ev unless a row with the same id exists. It
	// reports whether a row was written.
	RecordEvent(ctx context.Context, ev *OrderEvent) (bool, error)
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

func (r *repository) FindTableNumber(ctx context.Context, tenantID, tableID string) (int, error) {
	var number int
	res := r.db.WithContext(ctx).
		Table("cafe_tables").
		Select("table_number").
		Scopes(tenant.Scope(tenantID)).
		Where("id = ?", tableID).
		Limit(1).
		Scan(&number)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return number, nil
}

func (r *repository) FindAvailableMenus(ctx context.Context, tenantID string, ids []string) ([]MenuSnapshot, error) {
	var ms []MenuSnapshot
	err := r.db.WithContext(ctx).
		Table("menus").
		Select("id, name, price").
		Scopes(tenant.Scope(tenantID)).
		Where("id IN ? AND available = ?", ids, true).
		Scan(&ms).Error
	return ms, err
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) FindByID(ctx context.Context, tenantID, id string) (*Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, storecheck.Check(&o)
}

func (r *repository) LockByID(ctx context.Context, tenantID, id string) (*Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(tenantID)).
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, storecheck.Check(&o)
}

func (r *repository) FindAll(ctx context.Context, tenantID, status string) ([]Order, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(tenantID))
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []Order
	if err := q.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, storecheck.CheckAll(orders)
}

func (r *repository) UpdateStatus(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).
		Model(&Order{}).
		Scopes(tenant.Scope(o.TenantID.String())).
		Where("id = ?", o.ID).
		Updates(map[string]any{"status": o.Status, "updated_at": o.UpdatedAt}).Error
}

func (r *repository) UpdatePaymentVerified(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).
		Model(&Order{}).
		Scopes(tenant.Scope(o.TenantID.String())).
		Where("id = ?", o.ID).
		Updates(map[string]any{"payment_verified": o.PaymentVerified, "updated_at": o.UpdatedAt}).Error
}

func (r *repository) FindEvents(ctx context.Context, tenantID, orderID string) ([]OrderEvent, error) {
	var evs []OrderEvent
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("order_id = ?", orderID).
		Order("occurred_at ASC").
		Find(&evs).Error
	return evs, err
}

func (r *repository) RecordEvent(ctx context.Context, ev *OrderEvent) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(ev)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
