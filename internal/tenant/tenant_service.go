package tenant

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-kafe/internal/bootstrap"
	"go-kafe/internal/shared/contextutil"
	tenanterrors "go-kafe/internal/tenant/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=tenant_service.go -destination=mock/tenant_service_mock.go -package=mock
type Service interface {
	ResolveBySlug(ctx context.Context, slug string) (Resolution, error)
	GetByID(ctx context.Context, id string) (*Tenant, error)

	Create(ctx context.Context, req CreateTenantRequest) (TenantResponse, error)
	List(ctx context.Context) ([]TenantResponse, error)
	Get(ctx context.Context, id string) (TenantResponse, error)
	Update(ctx context.Context, id string, req UpdateTenantRequest) (TenantResponse, error)
	Delete(ctx context.Context, id string) error

	GetSettings(ctx context.Context, tenantID string) (TenantResponse, error)
	UpdateSettings(ctx context.Context, tenantID string, req UpdateSettingsRequest) (TenantResponse, error)
	RotateDailyToken(ctx context.Context, tenantID string, req RotateDailyTokenRequest) (TenantResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	audit    bootstrap.AuditLogger
	newToken func() (string, error)
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("tenant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tenant.service")
	}
	if audit == nil {
		audit = bootstrap.NopAuditLogger{}
	}
	return &service{
		db:       db,
		repo:     repo,
		audit:    audit,
		newToken: GenerateDailyToken,
		logger:   l,
	}
}

func (s *service) ResolveBySlug(ctx context.Context, slug string) (Resolution, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	t, err := s.repo.FindBySlug(ctx, slug)
	if err == nil {
		return Resolution{Tenant: t, Canonical: true}, nil
	}
	if mapped := mapLoadError(err); !errors.Is(mapped, tenanterrors.ErrTenantNotFound) {
		log.Error("resolve tenant by slug failed", zap.String("slug", slug), zap.Error(err))
		return Resolution{}, mapped
	}

	t, err = s.repo.FindByAlias(ctx, slug)
	if err != nil {
		mapped := mapLoadError(err)
		if !errors.Is(mapped, tenanterrors.ErrTenantNotFound) {
			log.Error("resolve tenant by alias failed", zap.String("slug", slug), zap.Error(err))
		}
		return Resolution{}, mapped
	}

	log.Debug("tenant resolved through historic slug",
		zap.String("slug", slug),
		zap.String("canonical_slug", t.Slug),
	)
	return Resolution{Tenant: t, Canonical: false}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Tenant, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, tenanterrors.ErrTenantNotFound
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLoadError(err)
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, req CreateTenantRequest) (TenantResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	slug := Slugify(req.Name)
	s.logger.Debug("create tenant requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("slug", slug),
	)
	if slug == "" {
		return TenantResponse{}, tenanterrors.ErrInvalidTenantName
	}

	token, err := s.newToken()
	if err != nil {
		s.logger.Error("create tenant generate daily token failed", zap.Error(err))
		return TenantResponse{}, err
	}

	now := time.Now().UTC()
	t := &Tenant{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        slug,
		DailyToken:  token,
		Address:     req.Address,
		OwnerName:   req.OwnerName,
		PhoneNumber: req.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create tenant begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TenantResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	// a live slug always wins over an alias
	if err := qtx.DeleteAlias(ctx, slug); err != nil {
		s.logger.Error("create tenant clear alias failed", zap.Error(err))
		return TenantResponse{}, err
	}
	if err := qtx.Create(ctx, t); err != nil {
		s.logger.Warn("create tenant persist failed", zap.String("slug", slug), zap.Error(err))
		return TenantResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create tenant commit failed", zap.String("request_id", rid), zap.Error(err))
		return TenantResponse{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:   bootstrap.AuditTenantCreated,
		Message:  "Tenant created",
		TenantID: t.ID.String(),
		Meta:     map[string]any{"slug": t.Slug},
	})
	s.logger.Info("create tenant success",
		zap.String("request_id", rid),
		zap.String("tenant_id", t.ID.String()),
		zap.String("slug", t.Slug),
	)
	return mapToResponse(*t), nil
}

func (s *service) List(ctx context.Context) ([]TenantResponse, error) {
	tenants, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list tenants failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(tenants), nil
}

func (s *service) Get(ctx context.Context, id string) (TenantResponse, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return TenantResponse{}, err
	}
	return mapToResponse(*t), nil
}

// Update renames the tenant. The slug follows the name; the previous slug
// is kept as an alias and admin profiles get the new display name in the
// same transaction.
func (s *service) Update(ctx context.Context, id string, req UpdateTenantRequest) (TenantResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	newSlug := Slugify(req.Name)
	s.logger.Debug("update tenant requested",
		zap.String("request_id", rid),
		zap.String("tenant_id", id),
		zap.String("new_slug", newSlug),
	)
	if newSlug == "" {
		return TenantResponse{}, tenanterrors.ErrInvalidTenantName
	}
	if _, err := uuid.Parse(id); err != nil {
		return TenantResponse{}, tenanterrors.ErrInvalidTenantID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update tenant begin tx failed", zap.Error(err))
		return TenantResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update tenant fetch existing failed", zap.String("tenant_id", id), zap.Error(err))
		return TenantResponse{}, mapRepositoryError(err)
	}

	oldSlug := t.Slug
	renamed := oldSlug != newSlug

	t.Name = req.Name
	t.Slug = newSlug
	t.Address = req.Address
	t.OwnerName = req.OwnerName
	t.PhoneNumber = req.PhoneNumber
	t.UpdatedAt = time.Now().UTC()

	if renamed {
		if err := qtx.DeleteAlias(ctx, newSlug); err != nil {
			s.logger.Error("update tenant clear alias failed", zap.Error(err))
			return TenantResponse{}, err
		}
	}
	if err := qtx.Update(ctx, t); err != nil {
		s.logger.Warn("update tenant persist failed", zap.String("tenant_id", id), zap.Error(err))
		return TenantResponse{}, mapRepositoryError(err)
	}
	if renamed {
		if err := qtx.SaveAlias(ctx, &SlugAlias{Slug: oldSlug, TenantID: t.ID, CreatedAt: t.UpdatedAt}); err != nil {
			s.logger.Error("update tenant save alias failed", zap.Error(err))
			return TenantResponse{}, err
		}
	}
	if err := qtx.RefreshProfileTenantName(ctx, id, t.Name); err != nil {
		s.logger.Error("update tenant refresh profile names failed", zap.Error(err))
		return TenantResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update tenant commit failed", zap.Error(err))
		return TenantResponse{}, err
	}

	if renamed {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:   bootstrap.AuditTenantRenamed,
			Message:  "Tenant renamed",
			TenantID: id,
			Meta:     map[string]any{"old_slug": oldSlug, "new_slug": newSlug},
		})
	}
	s.logger.Info("update tenant success",
		zap.String("tenant_id", id),
		zap.Bool("renamed", renamed),
	)
	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return tenanterrors.ErrInvalidTenantID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete tenant failed", zap.String("tenant_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:   bootstrap.AuditTenantDeleted,
		Message:  "Tenant deleted",
		TenantID: id,
	})
	s.logger.Info("delete tenant success", zap.String("tenant_id", id))
	return nil
}

func (s *service) GetSettings(ctx context.Context, tenantID string) (TenantResponse, error) {
	return s.Get(ctx, tenantID)
}

func (s *service) UpdateSettings(ctx context.Context, tenantID string, req UpdateSettingsRequest) (TenantResponse, error) {
	t, err := s.repo.FindByID(ctx, tenantID)
	if err != nil {
		s.logger.Warn("update settings fetch failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return TenantResponse{}, mapRepositoryError(err)
	}

	t.LogoURL = req.LogoURL
	t.QrisImageURL = req.QrisImageURL
	t.Address = req.Address
	t.OwnerName = req.OwnerName
	t.PhoneNumber = req.PhoneNumber
	t.ReceiptMessage = req.ReceiptMessage
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("update settings persist failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return TenantResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update settings success", zap.String("tenant_id", tenantID))
	return mapToResponse(*t), nil
}

func (s *service) RotateDailyToken(ctx context.Context, tenantID string, req RotateDailyTokenRequest) (TenantResponse, error) {
	token := req.Token
	if token == "" {
		generated, err := s.newToken()
		if err != nil {
			s.logger.Error("rotate daily token generate failed", zap.Error(err))
			return TenantResponse{}, err
		}
		token = generated
	}
	if !validDailyToken(token) {
		return TenantResponse{}, tenanterrors.ErrInvalidDailyToken
	}

	t, err := s.repo.FindByID(ctx, tenantID)
	if err != nil {
		s.logger.Warn("rotate daily token fetch failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return TenantResponse{}, mapRepositoryError(err)
	}

	t.DailyToken = token
	t.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("rotate daily token persist failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return TenantResponse{}, mapRepositoryError(err)
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:   bootstrap.AuditDailyTokenRotated,
		Message:  "Daily token rotated",
		TenantID: tenantID,
	})
	return mapToResponse(*t), nil
}
