package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-kafe/internal/auth/errors"
	"go-kafe/internal/auth/token"
	"go-kafe/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	SignIn(ctx context.Context, email, password string) (Tokens, AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (Tokens, AuthResponse, error)
	Me(ctx context.Context, userID string) (*AuthResponse, error)

	CreateIdentity(ctx context.Context, email, password string) (*Identity, error)
	DeleteIdentity(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	cfg    token.Config
	logger *zap.Logger
}

func NewService(repo Repository, cfg token.Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, cfg: cfg.WithDefaults(), logger: l}
}

func (s *service) SignIn(ctx context.Context, email, password string) (Tokens, AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	identity, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if mapped := mapRepositoryError(err); !errors.Is(mapped, autherrors.ErrIdentityNotFound) {
			log.Error("sign in lookup failed", zap.Error(err))
			return Tokens{}, AuthResponse{}, mapped
		}
		log.Info("sign in rejected", zap.String("reason", "unknown email"))
		return Tokens{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		log.Info("sign in rejected", zap.String("reason", "password mismatch"), zap.String("user_id", identity.ID.String()))
		return Tokens{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	tokens, err := s.issue(identity)
	if err != nil {
		log.Error("sign in token generation failed", zap.Error(err))
		return Tokens{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	log.Info("sign in success", zap.String("user_id", identity.ID.String()))
	return tokens, mapToResponse(*identity), nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (Tokens, AuthResponse, error) {
	claims, err := token.Parse(s.cfg.Secret, refreshToken, token.TypeRefresh)
	if err != nil {
		return Tokens{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	identity, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, autherrors.ErrIdentityNotFound) {
			return Tokens{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
		}
		return Tokens{}, AuthResponse{}, mapped
	}

	tokens, err := s.issue(identity)
	if err != nil {
		s.logger.Error("refresh token generation failed", zap.Error(err))
		return Tokens{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	return tokens, mapToResponse(*identity), nil
}

func (s *service) Me(ctx context.Context, userID string) (*AuthResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	identity, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := mapToResponse(*identity)
	return &resp, nil
}

func (s *service) CreateIdentity(ctx context.Context, email, password string) (*Identity, error) {
	if len(password) < minPasswordLength {
		return nil, autherrors.ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	identity := &Identity{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, identity); err != nil {
		s.logger.Warn("create identity failed", zap.String("email", identity.Email), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("identity created", zap.String("user_id", identity.ID.String()))
	return identity, nil
}

func (s *service) DeleteIdentity(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete identity failed", zap.String("user_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	s.logger.Info("identity deleted", zap.String("user_id", id))
	return nil
}

func (s *service) issue(identity *Identity) (Tokens, error) {
	access, err := token.Generate(s.cfg.Secret, identity.ID.String(), identity.Email, token.TypeAccess, s.cfg.AccessTTL)
	if err != nil {
		return Tokens{}, err
	}
	refresh, err := token.Generate(s.cfg.Secret, identity.ID.String(), identity.Email, token.TypeRefresh, s.cfg.RefreshTTL)
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

func mapToResponse(identity Identity) AuthResponse {
	return AuthResponse{
		ID:    identity.ID.String(),
		Email: identity.Email,
	}
}
