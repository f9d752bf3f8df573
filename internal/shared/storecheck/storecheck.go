// Package storecheck validates rows after they are read, so a malformed
// record is rejected at the repository boundary instead of leaking into
// business logic.
package storecheck

import (
	"net/http"
	"sync"

	"go-kafe/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

var ErrMalformedRecord = apperror.New(
	apperror.CodeInternalError,
	"Stored record is malformed",
	http.StatusInternalServerError,
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
	})
	return v
}

// Check runs the `validate` tags on a single record.
func Check(record any) error {
	if err := instance().Struct(record); err != nil {
		return ErrMalformedRecord.WithCause(err)
	}
	return nil
}

// CheckAll stops at the first malformed record.
func CheckAll[T any](records []T) error {
	for i := range records {
		if err := Check(&records[i]); err != nil {
			return err
		}
	}
	return nil
}
