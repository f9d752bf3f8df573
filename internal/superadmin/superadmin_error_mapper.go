package superadmin

import (
	"errors"

	superadminerrors "go-kafe/internal/superadmin/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return superadminerrors.ErrSuperAdminNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "super_admins_bootstrap_once", "super_admins_pkey":
			return superadminerrors.ErrBootstrapRejected
		}
	}

	return err
}
