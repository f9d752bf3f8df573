package table

import (
	"context"
	"time"

	"go-kafe/internal/live"
	"go-kafe/internal/shared/contextutil"
	tableerrors "go-kafe/internal/table/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventTableChanged = "table.changed"
	EventTableDeleted = "table.deleted"
)

//go:generate mockgen -source=table_service.go -destination=mock/table_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, tenantID, slug string) ([]TableResponse, error)
	Get(ctx context.Context, tenantID, slug, id string) (TableResponse, error)
	Create(ctx context.Context, tenantID, slug string, req TableRequest) (TableResponse, error)
	Update(ctx context.Context, tenantID, slug, id string, req TableRequest) (TableResponse, error)
	SetStatus(ctx context.Context, tenantID, slug, id, status string) (TableResponse, error)
	Delete(ctx context.Context, tenantID, id string) error
	QRCode(ctx context.Context, tenantID, slug, id string) ([]byte, error)

	// TableNumber resolves a table of the tenant for the public pages.
	TableNumber(ctx context.Context, tenantID, tableID string) (int, error)
}

type service struct {
	repo   Repository
	live   live.Publisher
	origin string
	logger *zap.Logger
}

// NewService builds the table service. origin is the public site URL the
// QR payloads point at.
func NewService(repo Repository, publisher live.Publisher, origin string, logger ...*zap.Logger) Service {
	l := zap.L().Named("table.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("table.service")
	}
	if publisher == nil {
		publisher = live.NopPublisher{}
	}
	return &service{repo: repo, live: publisher, origin: origin, logger: l}
}

func (s *service) publish(ctx context.Context, tenantID, eventType, id string, data any) {
	err := s.live.Publish(ctx, tenantID, live.ChannelTables, live.Event{Type: eventType, ID: id, Data: data})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("publish live table event failed",
			zap.String("tenant_id", tenantID),
			zap.String("type", eventType),
			zap.Error(err),
		)
	}
}

func (s *service) List(ctx context.Context, tenantID, slug string) ([]TableResponse, error) {
	ts, err := s.repo.FindAll(ctx, tenantID)
	if err != nil {
		s.logger.Error("list tables failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	out := make([]TableResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, mapToResponse(t, s.origin, slug))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, tenantID, slug, id string) (TableResponse, error) {
	t, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return TableResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t, s.origin, slug), nil
}

func (s *service) Create(ctx context.Context, tenantID, slug string, req TableRequest) (TableResponse, error) {
	tid, err := uuid.Parse(tenantID)
	if err != nil {
		return TableResponse{}, tableerrors.ErrTableNotFound
	}

	status := req.Status
	if status == "" {
		status = StatusAvailable
	}
	if !ValidStatus(status) {
		return TableResponse{}, tableerrors.ErrInvalidTableStatus
	}

	now := time.Now().UTC()
	t := &Table{
		ID:          uuid.New(),
		TenantID:    tid,
		TableNumber: req.TableNumber,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Warn("create table failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return TableResponse{}, mapRepositoryError(err)
	}

	resp := mapToResponse(*t, s.origin, slug)
	s.publish(ctx, tenantID, EventTableChanged, resp.ID, resp)
	return resp, nil
}

func (s *service) Update(ctx context.Context, tenantID, slug, id string, req TableRequest) (TableResponse, error) {
	t, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return TableResponse{}, mapRepositoryError(err)
	}

	t.TableNumber = req.TableNumber
	if req.Status != "" {
		if !ValidStatus(req.Status) {
			return TableResponse{}, tableerrors.ErrInvalidTableStatus
		}
		t.Status = req.Status
	}
	return s.save(ctx, t, slug)
}

func (s *service) SetStatus(ctx context.Context, tenantID, slug, id, status string) (TableResponse, error) {
	if !ValidStatus(status) {
		return TableResponse{}, tableerrors.ErrInvalidTableStatus
	}

	t, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return TableResponse{}, mapRepositoryError(err)
	}
	if t.Status == status {
		return mapToResponse(*t, s.origin, slug), nil
	}
	t.Status = status
	return s.save(ctx, t, slug)
}

func (s *service) save(ctx context.Context, t *Table, slug string) (TableResponse, error) {
	t.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Warn("update table failed", zap.String("table_id", t.ID.String()), zap.Error(err))
		return TableResponse{}, mapRepositoryError(err)
	}

	resp := mapToResponse(*t, s.origin, slug)
	s.publish(ctx, t.TenantID.String(), EventTableChanged, resp.ID, resp)
	return resp, nil
}

func (s *service) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		s.logger.Warn("delete table failed", zap.String("table_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	s.publish(ctx, tenantID, EventTableDeleted, id, nil)
	return nil
}

func (s *service) QRCode(ctx context.Context, tenantID, slug, id string) ([]byte, error) {
	t, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	png, err := QRCodePNG(QRPayload(s.origin, slug, t.ID.String()))
	if err != nil {
		s.logger.Error("render qr code failed", zap.String("table_id", id), zap.Error(err))
		return nil, tableerrors.ErrQRCodeFailed.WithCause(err)
	}
	return png, nil
}

func (s *service) TableNumber(ctx context.Context, tenantID, tableID string) (int, error) {
	if _, err := uuid.Parse(tableID); err != nil {
		return 0, tableerrors.ErrTableNotFound
	}
	t, err := s.repo.FindByID(ctx, tenantID, tableID)
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	return t.TableNumber, nil
}
