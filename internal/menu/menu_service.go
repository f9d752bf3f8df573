package menu

import (
	"context"
	"time"

	"go-kafe/internal/live"
	menuerrors "go-kafe/internal/menu/errors"
	"go-kafe/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Live event types on the menus channel.
const (
	EventMenuChanged     = "menu.changed"
	EventMenuDeleted     = "menu.deleted"
	EventCategoryChanged = "category.changed"
	EventCategoryDeleted = "category.deleted"
)

//go:generate mockgen -source=menu_service.go -destination=mock/menu_service_mock.go -package=mock
type Service interface {
	ListCategories(ctx context.Context, tenantID string) ([]CategoryResponse, error)
	CreateCategory(ctx context.Context, tenantID string, req CategoryRequest) (CategoryResponse, error)
	UpdateCategory(ctx context.Context, tenantID, id string, req CategoryRequest) (CategoryResponse, error)
	DeleteCategory(ctx context.Context, tenantID, id string) error

	ListMenus(ctx context.Context, tenantID string) ([]MenuResponse, error)
	GetMenu(ctx context.Context, tenantID, id string) (MenuResponse, error)
	CreateMenu(ctx context.Context, tenantID string, req CreateMenuRequest) (MenuResponse, error)
	UpdateMenu(ctx context.Context, tenantID, id string, req UpdateMenuRequest) (MenuResponse, error)
	DeleteMenu(ctx context.Context, tenantID, id string) error
	SetAvailability(ctx context.Context, tenantID, id string, available bool) (MenuResponse, error)

	PublicCatalog(ctx context.Context, tenantID string) ([]CatalogSection, error)
}

type service struct {
	repo   Repository
	live   live.Publisher
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, publisher live.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("menu.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("menu.service")
	}
	if publisher == nil {
		publisher = live.NopPublisher{}
	}
	return &service{repo: repo, live: publisher, sf: &singleflight.Group{}, logger: l}
}

func (s *service) publish(ctx context.Context, tenantID, eventType, id string, data any) {
	err := s.live.Publish(ctx, tenantID, live.ChannelMenus, live.Event{Type: eventType, ID: id, Data: data})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("publish live menu event failed",
			zap.String("tenant_id", tenantID),
			zap.String("type", eventType),
			zap.Error(err),
		)
	}
}

func (s *service) ListCategories(ctx context.Context, tenantID string) ([]CategoryResponse, error) {
	cs, err := s.repo.FindCategories(ctx, tenantID)
	if err != nil {
		s.logger.Error("list categories failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return nil, mapCategoryError(err)
	}
	return mapCategories(cs), nil
}

func (s *service) CreateCategory(ctx context.Context, tenantID string, req CategoryRequest) (CategoryResponse, error) {
	tid, err := uuid.Parse(tenantID)
	if err != nil {
		return CategoryResponse{}, menuerrors.ErrCategoryNotFound
	}

	now := time.Now().UTC()
	c := &Category{ID: uuid.New(), TenantID: tid, Name: req.Name, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		s.logger.Warn("create category failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return CategoryResponse{}, mapCategoryError(err)
	}

	resp := mapCategory(*c)
	s.publish(ctx, tenantID, EventCategoryChanged, resp.ID, resp)
	return resp, nil
}

func (s *service) UpdateCategory(ctx context.Context, tenantID, id string, req CategoryRequest) (CategoryResponse, error) {
	c, err := s.repo.FindCategoryByID(ctx, tenantID, id)
	if err != nil {
		return CategoryResponse{}, mapCategoryError(err)
	}

	c.Name = req.Name
	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		s.logger.Warn("update category failed", zap.String("category_id", id), zap.Error(err))
		return CategoryResponse{}, mapCategoryError(err)
	}

	resp := mapCategory(*c)
	s.publish(ctx, tenantID, EventCategoryChanged, resp.ID, resp)
	return resp, nil
}

func (s *service) DeleteCategory(ctx context.Context, tenantID, id string) error {
	n, err := s.repo.CountMenusInCategory(ctx, tenantID, id)
	if err != nil {
		return mapCategoryError(err)
	}
	if n > 0 {
		return menuerrors.ErrCategoryInUse
	}

	// the FK still catches a menu added between the count and the delete
	if err := s.repo.DeleteCategory(ctx, tenantID, id); err != nil {
		s.logger.Warn("delete category failed", zap.String("category_id", id), zap.Error(err))
		return mapCategoryError(err)
	}

	s.publish(ctx, tenantID, EventCategoryDeleted, id, nil)
	return nil
}

func (s *service) ListMenus(ctx context.Context, tenantID string) ([]MenuResponse, error) {
	ms, err := s.repo.FindMenus(ctx, tenantID, false)
	if err != nil {
		s.logger.Error("list menus failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapMenus(ms), nil
}

func (s *service) GetMenu(ctx context.Context, tenantID, id string) (MenuResponse, error) {
	m, err := s.repo.FindMenuByID(ctx, tenantID, id)
	if err != nil {
		return MenuResponse{}, mapRepositoryError(err)
	}
	return mapMenu(*m), nil
}

func (s *service) CreateMenu(ctx context.Context, tenantID string, req CreateMenuRequest) (MenuResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if req.Price < 0 {
		return MenuResponse{}, menuerrors.ErrInvalidPrice
	}

	tid, err := uuid.Parse(tenantID)
	if err != nil {
		return MenuResponse{}, menuerrors.ErrCategoryNotFound
	}
	// the category must be one of this tenant's
	category, err := s.repo.FindCategoryByID(ctx, tenantID, req.CategoryID)
	if err != nil {
		return MenuResponse{}, mapCategoryError(err)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	now := time.Now().UTC()
	m := &Menu{
		ID:          uuid.New(),
		TenantID:    tid,
		CategoryID:  category.ID,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Available:   available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateMenu(ctx, m); err != nil {
		log.Warn("create menu failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return MenuResponse{}, mapRepositoryError(err)
	}

	return s.reloadAndPublish(ctx, tenantID, m.ID.String())
}

func (s *service) UpdateMenu(ctx context.Context, tenantID, id string, req UpdateMenuRequest) (MenuResponse, error) {
	if req.Price < 0 {
		return MenuResponse{}, menuerrors.ErrInvalidPrice
	}

	m, err := s.repo.FindMenuByID(ctx, tenantID, id)
	if err != nil {
		return MenuResponse{}, mapRepositoryError(err)
	}
	if req.CategoryID != m.CategoryID.String() {
		category, err := s.repo.FindCategoryByID(ctx, tenantID, req.CategoryID)
		if err != nil {
			return MenuResponse{}, mapCategoryError(err)
		}
		m.CategoryID = category.ID
	}

	m.Name = req.Name
	m.Price = req.Price
	m.Description = req.Description
	m.ImageURL = req.ImageURL
	if req.Available != nil {
		m.Available = *req.Available
	}
	m.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateMenu(ctx, m); err != nil {
		s.logger.Warn("update menu failed", zap.String("menu_id", id), zap.Error(err))
		return MenuResponse{}, mapRepositoryError(err)
	}

	return s.reloadAndPublish(ctx, tenantID, id)
}

func (s *service) DeleteMenu(ctx context.Context, tenantID, id string) error {
	if err := s.repo.DeleteMenu(ctx, tenantID, id); err != nil {
		s.logger.Warn("delete menu failed", zap.String("menu_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	s.publish(ctx, tenantID, EventMenuDeleted, id, nil)
	return nil
}

func (s *service) SetAvailability(ctx context.Context, tenantID, id string, available bool) (MenuResponse, error) {
	if err := s.repo.SetAvailability(ctx, tenantID, id, available); err != nil {
		return MenuResponse{}, mapRepositoryError(err)
	}
	return s.reloadAndPublish(ctx, tenantID, id)
}

func (s *service) reloadAndPublish(ctx context.Context, tenantID, id string) (MenuResponse, error) {
	m, err := s.repo.FindMenuByID(ctx, tenantID, id)
	if err != nil {
		return MenuResponse{}, mapRepositoryError(err)
	}
	resp := mapMenu(*m)
	s.publish(ctx, tenantID, EventMenuChanged, resp.ID, resp)
	return resp, nil
}

// PublicCatalog is what a customer sees after scanning a table QR code.
// Concurrent loads for the same tenant share one query.
func (s *service) PublicCatalog(ctx context.Context, tenantID string) ([]CatalogSection, error) {
	v, err, shared := s.sf.Do("catalog:"+tenantID, func() (interface{}, error) {
		// shared by every waiter, so one caller going away must not fail the rest
		ctx := context.WithoutCancel(ctx)
		categories, err := s.repo.FindCategories(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		menus, err := s.repo.FindMenus(ctx, tenantID, true)
		if err != nil {
			return nil, err
		}
		return buildCatalog(categories, menus), nil
	})
	if err != nil {
		s.logger.Error("load public catalog failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if shared {
		s.logger.Debug("public catalog load shared", zap.String("tenant_id", tenantID))
	}
	return v.([]CatalogSection), nil
}
