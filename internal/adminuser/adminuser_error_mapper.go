package adminuser

import (
	"errors"

	adminusererrors "go-kafe/internal/adminuser/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return adminusererrors.ErrAdminNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "admin_profiles_pkey" {
		return adminusererrors.ErrProfileAlreadyExists
	}

	return err
}
