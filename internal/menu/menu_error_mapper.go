package menu

import (
	"errors"

	menuerrors "go-kafe/internal/menu/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError maps errors from menu reads and writes. Category
// operations go through mapCategoryError.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return menuerrors.ErrMenuNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23503" && pgErr.ConstraintName == "menus_category_id_fkey":
			return menuerrors.ErrCategoryInUse
		case pgErr.Code == "23505" && pgErr.ConstraintName == "categories_tenant_name_key":
			return menuerrors.ErrCategoryNameTaken
		}
	}
	return err
}

func mapCategoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return menuerrors.ErrCategoryNotFound
	}
	return mapRepositoryError(err)
}
