package superadmin

import (
	"context"
	"errors"
	"time"

	"go-kafe/internal/bootstrap"
	"go-kafe/internal/diagnostics"
	"go-kafe/internal/shared/contextutil"
	superadminerrors "go-kafe/internal/superadmin/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=superadmin_service.go -destination=mock/superadmin_service_mock.go -package=mock
type Service interface {
	IsSuperAdmin(ctx context.Context, userID string) (bool, error)
	AnyExists(ctx context.Context) (bool, error)
	Bootstrap(ctx context.Context, userID, email string) (*SuperAdminRole, error)
	Me(ctx context.Context, userID string) (SuperAdminResponse, error)
}

type service struct {
	repo        Repository
	diagnostics diagnostics.Sink
	audit       bootstrap.AuditLogger
	logger      *zap.Logger
}

func NewService(repo Repository, sink diagnostics.Sink, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("superadmin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("superadmin.service")
	}
	if audit == nil {
		audit = bootstrap.NopAuditLogger{}
	}
	return &service{repo: repo, diagnostics: sink, audit: audit, logger: l}
}

func (s *service) IsSuperAdmin(ctx context.Context, userID string) (bool, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return false, nil
	}
	_, err := s.repo.FindByUserID(ctx, userID)
	if err == nil {
		return true, nil
	}
	if mapped := mapRepositoryError(err); errors.Is(mapped, superadminerrors.ErrSuperAdminNotFound) {
		return false, nil
	}
	return false, err
}

func (s *service) AnyExists(ctx context.Context) (bool, error) {
	return s.repo.Exists(ctx)
}

// Bootstrap claims the one-time super admin slot. The database admits a
// single bootstrap row, so concurrent callers race on the insert and all
// but one get ErrBootstrapRejected.
func (s *service) Bootstrap(ctx context.Context, userID, email string) (*SuperAdminRole, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, superadminerrors.ErrBootstrapRejected
	}

	role := &SuperAdminRole{
		UserID:       uid,
		Email:        email,
		Role:         RoleSuperAdmin,
		AssignedAt:   time.Now().UTC(),
		ViaBootstrap: true,
	}
	if err := s.repo.Create(ctx, role); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, superadminerrors.ErrBootstrapRejected) {
			if s.diagnostics != nil {
				s.diagnostics.Emit(ctx, diagnostics.PermissionDenied{
					Path:      "super_admins/" + userID,
					Operation: "create",
					Payload:   map[string]any{"email": email, "via_bootstrap": true},
					Reason:    "bootstrap slot already taken",
				})
			}
			log.Warn("super admin bootstrap rejected", zap.String("user_id", userID))
			return nil, mapped
		}
		log.Error("super admin bootstrap failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  bootstrap.AuditSuperAdminAssigned,
		Message: "First super admin assigned",
		ActorID: userID,
		Meta:    map[string]any{"email": email},
	})
	log.Info("super admin bootstrapped", zap.String("user_id", userID))
	return role, nil
}

func (s *service) Me(ctx context.Context, userID string) (SuperAdminResponse, error) {
	role, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return SuperAdminResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*role), nil
}
