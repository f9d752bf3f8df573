package tenant

import (
	"errors"

	tenanterrors "go-kafe/internal/tenant/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tenanterrors.ErrTenantNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "tenants_slug_key" {
				return tenanterrors.ErrTenantSlugTaken
			}
		case "23503":
			if pgErr.ConstraintName == "admin_profiles_tenant_id_fkey" {
				return tenanterrors.ErrTenantInUse
			}
		}
	}

	return err
}

// mapLoadError keeps "absent" and "could not load" apart for resolution.
func mapLoadError(err error) error {
	mapped := mapRepositoryError(err)
	if errors.Is(mapped, tenanterrors.ErrTenantNotFound) {
		return mapped
	}
	return tenanterrors.ErrTenantLoadFailed.WithCause(err)
}
