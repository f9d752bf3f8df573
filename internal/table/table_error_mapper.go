package table

import (
	"errors"

	tableerrors "go-kafe/internal/table/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tableerrors.ErrTableNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "cafe_tables_tenant_number_key" {
		return tableerrors.ErrTableNumberTaken
	}
	return err
}
