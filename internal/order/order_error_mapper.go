package order

import (
	"errors"

	ordererrors "go-kafe/internal/order/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ordererrors.ErrOrderNotFound
	}
	return err
}
