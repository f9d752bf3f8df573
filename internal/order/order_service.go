package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-kafe/internal/events"
	"go-kafe/internal/live"
	"go-kafe/internal/messaging/kafka"
	ordererrors "go-kafe/internal/order/errors"
	"go-kafe/internal/shared/contextutil"
	"go-kafe/internal/shared/counter"
	"go-kafe/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=order_service.go -destination=mock/order_service_mock.go -package=mock
type Service interface {
	Checkout(ctx context.Context, t *tenant.Tenant, tableID string, req CheckoutRequest) (OrderResponse, error)
	GetPublic(ctx context.Context, tenantID, id string) (OrderResponse, error)
	OrderExists(ctx context.Context, tenantID, id string) error

	Get(ctx context.Context, tenantID, id string) (OrderResponse, error)
	List(ctx context.Context, tenantID string, filter ListFilter) ([]OrderResponse, error)
	UpdateStatus(ctx context.Context, tenantID, actorID, id string, req UpdateStatusRequest) (OrderResponse, error)
	SetPaymentVerified(ctx context.Context, tenantID, actorID, id string, verified bool) (OrderResponse, error)
	History(ctx context.Context, tenantID, id string) ([]OrderEventResponse, error)

	// RecordLifecycleEvent appends ev to the audit log. Replays of the same
	// event id are ignored and reported as false.
	RecordLifecycleEvent(ctx context.Context, ev events.OrderLifecycleEvent) (bool, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	counter    counter.Repository
	outbox     kafka.OutboxRepository
	live       live.Publisher
	uniqueCode func() int
	logger     *zap.Logger
}

type Option func(*service)

// WithUniqueCode replaces the unique code generator.
func WithUniqueCode(gen func() int) Option {
	return func(s *service) { s.uniqueCode = gen }
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	publisher live.Publisher,
	logger *zap.Logger,
	opts ...Option,
) Service {
	if logger == nil {
		logger = zap.L()
	}
	if publisher == nil {
		publisher = live.NopPublisher{}
	}
	s := &service{
		db:         db,
		repo:       repo,
		counter:    counterRepo,
		outbox:     outboxRepo,
		live:       publisher,
		uniqueCode: NewUniqueCode,
		logger:     logger.Named("order.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Checkout(ctx context.Context, t *tenant.Tenant, tableID string, req CheckoutRequest) (OrderResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	tenantID := t.ID.String()

	// checked before anything is read so a wrong token writes nothing
	if req.VerificationToken != t.DailyToken {
		log.Info("checkout rejected: verification token mismatch",
			zap.String("tenant_id", tenantID),
			zap.String("table_id", tableID),
		)
		return OrderResponse{}, ordererrors.ErrInvalidVerificationToken
	}
	if req.PaymentMethod != PaymentQRIS && req.PaymentMethod != PaymentCash {
		return OrderResponse{}, ordererrors.ErrInvalidPaymentMethod
	}
	wanted, menuIDs, err := mergeItems(req.Items)
	if err != nil {
		return OrderResponse{}, err
	}
	tid, err := uuid.Parse(tableID)
	if err != nil {
		return OrderResponse{}, ordererrors.ErrTableNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("checkout begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	tableNumber, err := qtx.FindTableNumber(ctx, tenantID, tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, ordererrors.ErrTableNotFound
		}
		log.Error("checkout load table failed", zap.String("table_id", tableID), zap.Error(err))
		return OrderResponse{}, err
	}

	menus, err := qtx.FindAvailableMenus(ctx, tenantID, menuIDs)
	if err != nil {
		log.Error("checkout load menus failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return OrderResponse{}, err
	}
	items, missing := snapshotItems(menuIDs, wanted, menus)
	if len(missing) > 0 {
		return OrderResponse{}, ordererrors.ErrMenuUnavailable.WithDetails(map[string]any{"menu_ids": missing})
	}

	var code *int
	if req.PaymentMethod == PaymentQRIS {
		c := s.uniqueCode()
		code = &c
	}

	number, err := s.counter.WithTx(tx).GetNextValue(ctx, tenantID, counter.TypeOrderNumber)
	if err != nil {
		log.Error("checkout order number failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return OrderResponse{}, err
	}

	now := time.Now().UTC()
	o := &Order{
		ID:                uuid.New(),
		TenantID:          t.ID,
		TableID:           tid,
		TableNumber:       tableNumber,
		OrderNumber:       number,
		OrderItems:        items,
		TotalAmount:       TotalFor(items, req.PaymentMethod, code),
		UniqueCode:        code,
		Status:            StatusReceived,
		PaymentMethod:     req.PaymentMethod,
		VerificationToken: req.VerificationToken,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := qtx.Create(ctx, o); err != nil {
		log.Error("checkout persist order failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return OrderResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, events.OrderLifecycleEvent{
		EventType:  events.OrderCreated,
		OrderID:    o.ID.String(),
		TenantID:   tenantID,
		ToStatus:   o.Status,
		OccurredAt: now,
	}); err != nil {
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("checkout commit failed", zap.String("request_id", rid), zap.Error(err))
		return OrderResponse{}, err
	}

	resp := mapToResponse(*o)
	log.Info("order placed",
		zap.String("tenant_id", tenantID),
		zap.String("order_id", resp.ID),
		zap.Int64("order_number", resp.OrderNumber),
		zap.String("payment_method", resp.PaymentMethod),
		zap.Int64("total_amount", resp.TotalAmount),
	)
	s.publish(ctx, tenantID, events.OrderCreated, resp)
	return resp, nil
}

// mergeItems sums quantities of repeated menus and keeps first-seen order.
func mergeItems(items []CheckoutItem) (map[string]int, []string, error) {
	if len(items) == 0 {
		return nil, nil, ordererrors.ErrEmptyOrder
	}
	wanted := make(map[string]int, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, nil, ordererrors.ErrInvalidQuantity
		}
		if _, err := uuid.Parse(it.MenuID); err != nil {
			return nil, nil, ordererrors.ErrMenuUnavailable.WithDetails(map[string]any{"menu_ids": []string{it.MenuID}})
		}
		if _, seen := wanted[it.MenuID]; !seen {
			ids = append(ids, it.MenuID)
		}
		wanted[it.MenuID] += it.Quantity
	}
	return wanted, ids, nil
}

// snapshotItems copies name and price from the store. Menus the store did
// not return are reported as missing.
func snapshotItems(ids []string, wanted map[string]int, menus []MenuSnapshot) ([]OrderItem, []string) {
	byID := make(map[string]MenuSnapshot, len(menus))
	for _, m := range menus {
		byID[m.ID.String()] = m
	}

	items := make([]OrderItem, 0, len(ids))
	var missing []string
	for _, id := range ids {
		m, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		items = append(items, OrderItem{ID: id, Name: m.Name, Price: m.Price, Quantity: wanted[id]})
	}
	return items, missing
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, ev events.OrderLifecycleEvent) error {
	if s.outbox == nil {
		return nil
	}
	ev.EventID = uuid.NewString()
	ev.RequestID = contextutil.GetRequestID(ctx)

	payload, err := json.Marshal(ev)
	if err != nil {
		s.logger.Error("marshal order event failed", zap.String("order_id", ev.OrderID), zap.Error(err))
		return err
	}

	row := kafka.NewOrderEvent(ev.EventID, ev.RequestID, ev.OrderID, ev.EventType, payload)
	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("order outbox persist failed",
			zap.String("order_id", ev.OrderID),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// publish fans an order change out to the dashboard and to the customer
// following that order.
func (s *service) publish(ctx context.Context, tenantID, eventType string, resp OrderResponse) {
	ev := live.Event{Type: eventType, ID: resp.ID, Data: resp, At: time.Now().UTC()}
	for _, ch := range []string{live.ChannelOrders, live.OrderChannel(resp.ID)} {
		if err := s.live.Publish(ctx, tenantID, ch, ev); err != nil {
			contextutil.GetLogger(ctx, s.logger).Warn("publish live order event failed",
				zap.String("tenant_id", tenantID),
				zap.String("channel", ch),
				zap.Error(err),
			)
		}
	}
}

// GetPublic is the customer status page read. Orders are only reachable
// through the tenant that owns them.
func (s *service) GetPublic(ctx context.Context, tenantID, id string) (OrderResponse, error) {
	return s.Get(ctx, tenantID, id)
}

func (s *service) OrderExists(ctx context.Context, tenantID, id string) error {
	_, err := s.GetPublic(ctx, tenantID, id)
	return err
}

func (s *service) Get(ctx context.Context, tenantID, id string) (OrderResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OrderResponse{}, ordererrors.ErrOrderNotFound
	}
	o, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return OrderResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*o), nil
}

func (s *service) List(ctx context.Context, tenantID string, filter ListFilter) ([]OrderResponse, error) {
	if filter.Status != "" && !ValidStatus(filter.Status) {
		return nil, ordererrors.ErrInvalidStatus
	}
	orders, err := s.repo.FindAll(ctx, tenantID, filter.Status)
	if err != nil {
		s.logger.Error("list orders failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(orders), nil
}

func (s *service) UpdateStatus(ctx context.Context, tenantID, actorID, id string, req UpdateStatusRequest) (OrderResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if !ValidStatus(req.Status) {
		return OrderResponse{}, ordererrors.ErrInvalidStatus
	}
	if _, err := uuid.Parse(id); err != nil {
		return OrderResponse{}, ordererrors.ErrOrderNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	o, err := qtx.LockByID(ctx, tenantID, id)
	if err != nil {
		return OrderResponse{}, mapRepositoryError(err)
	}

	from := o.Status
	if from == req.Status {
		return mapToResponse(*o), nil
	}
	if err := CheckTransition(from, req.Status); err != nil {
		log.Info("order status change rejected",
			zap.String("order_id", id),
			zap.String("from", from),
			zap.String("to", req.Status),
		)
		return OrderResponse{}, err
	}

	now := time.Now().UTC()
	o.Status = req.Status
	o.UpdatedAt = now
	if err := qtx.UpdateStatus(ctx, o); err != nil {
		log.Error("update order status failed", zap.String("order_id", id), zap.Error(err))
		return OrderResponse{}, mapRepositoryError(err)
	}

	if err := s.queueEvent(ctx, tx, events.OrderLifecycleEvent{
		EventType:  events.OrderStatusChanged,
		OrderID:    id,
		TenantID:   tenantID,
		ActorID:    actorID,
		FromStatus: from,
		ToStatus:   req.Status,
		Reason:     req.Reason,
		OccurredAt: now,
	}); err != nil {
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("update order status commit failed", zap.String("order_id", id), zap.Error(err))
		return OrderResponse{}, err
	}

	resp := mapToResponse(*o)
	s.publish(ctx, tenantID, events.OrderStatusChanged, resp)
	return resp, nil
}

func (s *service) SetPaymentVerified(ctx context.Context, tenantID, actorID, id string, verified bool) (OrderResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return OrderResponse{}, ordererrors.ErrOrderNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	o, err := qtx.LockByID(ctx, tenantID, id)
	if err != nil {
		return OrderResponse{}, mapRepositoryError(err)
	}
	if o.PaymentVerified == verified {
		return mapToResponse(*o), nil
	}

	now := time.Now().UTC()
	o.PaymentVerified = verified
	o.UpdatedAt = now
	if err := qtx.UpdatePaymentVerified(ctx, o); err != nil {
		log.Error("update payment verification failed", zap.String("order_id", id), zap.Error(err))
		return OrderResponse{}, mapRepositoryError(err)
	}

	if err := s.queueEvent(ctx, tx, events.OrderLifecycleEvent{
		EventType:       events.OrderPaymentVerified,
		OrderID:         id,
		TenantID:        tenantID,
		ActorID:         actorID,
		PaymentVerified: &verified,
		OccurredAt:      now,
	}); err != nil {
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("update payment verification commit failed", zap.String("order_id", id), zap.Error(err))
		return OrderResponse{}, err
	}

	resp := mapToResponse(*o)
	s.publish(ctx, tenantID, events.OrderPaymentVerified, resp)
	return resp, nil
}

func (s *service) History(ctx context.Context, tenantID, id string) ([]OrderEventResponse, error) {
	if _, err := s.Get(ctx, tenantID, id); err != nil {
		return nil, err
	}
	evs, err := s.repo.FindEvents(ctx, tenantID, id)
	if err != nil {
		s.logger.Error("load order history failed", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}
	return mapEvents(evs), nil
}

func (s *service) RecordLifecycleEvent(ctx context.Context, ev events.OrderLifecycleEvent) (bool, error) {
	id, err := uuid.Parse(ev.EventID)
	if err != nil {
		return false, err
	}
	orderID, err := uuid.Parse(ev.OrderID)
	if err != nil {
		return false, err
	}
	tenantID, err := uuid.Parse(ev.TenantID)
	if err != nil {
		return false, err
	}

	return s.repo.RecordEvent(ctx, &OrderEvent{
		ID:              id,
		OrderID:         orderID,
		TenantID:        tenantID,
		EventType:       ev.EventType,
		ActorID:         ev.ActorID,
		FromStatus:      ev.FromStatus,
		ToStatus:        ev.ToStatus,
		Reason:          ev.Reason,
		PaymentVerified: ev.PaymentVerified,
		OccurredAt:      ev.OccurredAt,
	})
}
