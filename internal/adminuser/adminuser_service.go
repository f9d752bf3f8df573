package adminuser

import (
	"context"
	"errors"
	"strings"
	"time"

	adminusererrors "go-kafe/internal/adminuser/errors"
	"go-kafe/internal/auth"
	autherrors "go-kafe/internal/auth/errors"
	"go-kafe/internal/bootstrap"
	"go-kafe/internal/shared/contextutil"
	"go-kafe/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const compensationBatchSize = 50

// IdentityProvider creates and removes sign-in credentials.
type IdentityProvider interface {
	CreateIdentity(ctx context.Context, email, password string) (*auth.Identity, error)
	DeleteIdentity(ctx context.Context, id string) error
}

type TenantLookup interface {
	GetByID(ctx context.Context, id string) (*tenant.Tenant, error)
}

//go:generate mockgen -source=adminuser_service.go -destination=mock/adminuser_service_mock.go -package=mock
type Service interface {
	Provision(ctx context.Context, idempotencyKey string, req ProvisionAdminRequest) (AdminProfileResponse, error)
	List(ctx context.Context) ([]AdminProfileResponse, error)
	Get(ctx context.Context, id string) (AdminProfileResponse, error)
	Delete(ctx context.Context, id string) error

	// GetProfile is the raw lookup used by the access gate.
	GetProfile(ctx context.Context, identityID string) (*AdminProfile, error)
	RetryCompensations(ctx context.Context) (int, error)
}

type service struct {
	repo       Repository
	identities IdentityProvider
	tenants    TenantLookup
	audit      bootstrap.AuditLogger
	logger     *zap.Logger
}

func NewService(repo Repository, identities IdentityProvider, tenants TenantLookup, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("adminuser.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("adminuser.service")
	}
	if audit == nil {
		audit = bootstrap.NopAuditLogger{}
	}
	return &service{
		repo:       repo,
		identities: identities,
		tenants:    tenants,
		audit:      audit,
		logger:     l,
	}
}

// Provision creates an identity and its admin profile as a saga. Progress
// is stored under idempotencyKey so a retried request resumes where the
// previous one stopped instead of creating a second identity.
func (s *service) Provision(ctx context.Context, idempotencyKey string, req ProvisionAdminRequest) (AdminProfileResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	t, err := s.tenants.GetByID(ctx, req.TenantID)
	if err != nil {
		log.Warn("provision admin tenant lookup failed", zap.String("tenant_id", req.TenantID), zap.Error(err))
		return AdminProfileResponse{}, err
	}

	saga, err := s.repo.FindSaga(ctx, idempotencyKey)
	switch mapped := mapRepositoryError(err); {
	case err == nil:
		if saga.Email != email || saga.TenantID != t.ID {
			return AdminProfileResponse{}, adminusererrors.ErrIdempotencyKeyReused
		}
	case errors.Is(mapped, adminusererrors.ErrAdminNotFound):
		saga = &ProvisioningSaga{
			ID:        idempotencyKey,
			Email:     email,
			TenantID:  t.ID,
			State:     SagaStarted,
			CreatedAt: time.Now().UTC(),
		}
	default:
		log.Error("provision admin load saga failed", zap.String("saga_id", idempotencyKey), zap.Error(err))
		return AdminProfileResponse{}, err
	}

	switch saga.State {
	case SagaCompleted:
		log.Info("provision admin replayed", zap.String("saga_id", saga.ID))
		return s.Get(ctx, saga.IdentityID.String())
	case SagaCompensationFailed:
		return AdminProfileResponse{}, adminusererrors.ErrProvisioningPending
	case SagaIdentityCreated:
		log.Info("provision admin resuming", zap.String("saga_id", saga.ID))
	default:
		saga.State = SagaStarted
		saga.IdentityID = nil
		saga.LastError = ""
		if err := s.saveSaga(ctx, saga); err != nil {
			return AdminProfileResponse{}, err
		}

		identity, err := s.identities.CreateIdentity(ctx, email, req.Password)
		if err != nil {
			log.Warn("provision admin create identity failed", zap.String("saga_id", saga.ID), zap.Error(err))
			saga.LastError = err.Error()
			_ = s.saveSaga(ctx, saga)
			return AdminProfileResponse{}, err
		}

		saga.IdentityID = &identity.ID
		saga.State = SagaIdentityCreated
		if err := s.saveSaga(ctx, saga); err != nil {
			// without a record of the identity we cannot resume, undo now
			return AdminProfileResponse{}, s.compensate(ctx, saga, err)
		}
	}

	profile := &AdminProfile{
		ID:         *saga.IdentityID,
		Email:      email,
		Role:       RoleAdminKafe,
		TenantID:   &t.ID,
		TenantName: t.Name,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		// a previous attempt got this far before losing the saga update
		if !errors.Is(mapRepositoryError(err), adminusererrors.ErrProfileAlreadyExists) {
			log.Warn("provision admin create profile failed", zap.String("saga_id", saga.ID), zap.Error(err))
			return AdminProfileResponse{}, s.compensate(ctx, saga, err)
		}
	}

	saga.State = SagaCompleted
	saga.LastError = ""
	if err := s.saveSaga(ctx, saga); err != nil {
		// the profile exists; a replay will find it through the pkey conflict
		log.Warn("provision admin mark completed failed", zap.String("saga_id", saga.ID), zap.Error(err))
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:   bootstrap.AuditAdminProvisioned,
		Message:  "Tenant admin provisioned",
		ActorID:  contextutil.GetUserID(ctx),
		TenantID: t.ID.String(),
		Meta:     map[string]any{"admin_id": profile.ID.String(), "email": email},
	})
	log.Info("provision admin success", zap.String("saga_id", saga.ID), zap.String("admin_id", profile.ID.String()))

	profile.TenantName = t.Name
	return mapToResponse(*profile), nil
}

// compensate removes the identity created by the saga and records the
// outcome. It returns the error the caller should surface.
func (s *service) compensate(ctx context.Context, saga *ProvisioningSaga, cause error) error {
	log := contextutil.GetLogger(ctx, s.logger)
	saga.LastError = cause.Error()

	if err := s.identities.DeleteIdentity(ctx, saga.IdentityID.String()); err != nil &&
		!errors.Is(err, autherrors.ErrIdentityNotFound) {
		saga.State = SagaCompensationFailed
		log.Error("provision admin compensation failed, identity left behind",
			zap.String("saga_id", saga.ID),
			zap.String("identity_id", saga.IdentityID.String()),
			zap.NamedError("cause", cause),
			zap.Error(err),
		)
		_ = s.saveSaga(ctx, saga)
		return adminusererrors.ErrProvisioningFailed.WithCause(cause)
	}

	saga.State = SagaCompensated
	_ = s.saveSaga(ctx, saga)
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:   bootstrap.AuditAdminCompensated,
		Message:  "Admin provisioning rolled back",
		TenantID: saga.TenantID.String(),
		Meta:     map[string]any{"saga_id": saga.ID, "error": saga.LastError},
	})
	log.Warn("provision admin compensated", zap.String("saga_id", saga.ID), zap.Error(cause))
	return adminusererrors.ErrProvisioningFailed.WithCause(cause)
}

func (s *service) saveSaga(ctx context.Context, saga *ProvisioningSaga) error {
	saga.UpdatedAt = time.Now().UTC()
	if err := s.repo.SaveSaga(ctx, saga); err != nil {
		s.logger.Error("save provisioning saga failed",
			zap.String("saga_id", saga.ID),
			zap.String("state", saga.State),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// RetryCompensations retries identity cleanup for sagas whose rollback
// failed. It returns how many were cleaned up.
func (s *service) RetryCompensations(ctx context.Context) (int, error) {
	sagas, err := s.repo.FindSagasByState(ctx, SagaCompensationFailed, compensationBatchSize)
	if err != nil {
		return 0, err
	}

	done := 0
	for i := range sagas {
		saga := &sagas[i]
		if saga.IdentityID == nil {
			saga.State = SagaCompensated
			_ = s.saveSaga(ctx, saga)
			done++
			continue
		}

		err := s.identities.DeleteIdentity(ctx, saga.IdentityID.String())
		if err != nil && !errors.Is(err, autherrors.ErrIdentityNotFound) {
			s.logger.Warn("retry compensation failed", zap.String("saga_id", saga.ID), zap.Error(err))
			saga.LastError = err.Error()
			_ = s.saveSaga(ctx, saga)
			continue
		}

		saga.State = SagaCompensated
		if err := s.saveSaga(ctx, saga); err != nil {
			continue
		}
		done++
	}

	if done > 0 {
		s.logger.Info("provisioning compensations retried", zap.Int("compensated", done), zap.Int("batch", len(sagas)))
	}
	return done, nil
}

func (s *service) List(ctx context.Context) ([]AdminProfileResponse, error) {
	ps, err := s.repo.FindAllProfiles(ctx)
	if err != nil {
		s.logger.Error("list admins failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(ps), nil
}

func (s *service) Get(ctx context.Context, id string) (AdminProfileResponse, error) {
	p, err := s.GetProfile(ctx, id)
	if err != nil {
		return AdminProfileResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) GetProfile(ctx context.Context, identityID string) (*AdminProfile, error) {
	if _, err := uuid.Parse(identityID); err != nil {
		return nil, adminusererrors.ErrAdminNotFound
	}
	p, err := s.repo.FindProfileByID(ctx, identityID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return p, nil
}

// Delete removes the profile, then the identity.
func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	p, err := s.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteProfile(ctx, id); err != nil {
		log.Warn("delete admin profile failed", zap.String("admin_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := s.identities.DeleteIdentity(ctx, id); err != nil && !errors.Is(err, autherrors.ErrIdentityNotFound) {
		log.Error("delete admin identity failed", zap.String("admin_id", id), zap.Error(err))
		return err
	}

	tenantID := ""
	if p.TenantID != nil {
		tenantID = p.TenantID.String()
	}
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:   bootstrap.AuditAdminDeleted,
		Message:  "Tenant admin deleted",
		ActorID:  contextutil.GetUserID(ctx),
		TenantID: tenantID,
		Meta:     map[string]any{"admin_id": id},
	})
	log.Info("delete admin success", zap.String("admin_id", id))
	return nil
}
