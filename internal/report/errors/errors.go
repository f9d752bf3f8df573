package reporterrors

import (
	"net/http"

	"go-kafe/internal/shared/apperror"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Give either date=YYYY-MM-DD or month=YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidCursor = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid page cursor",
		http.StatusBadRequest,
	)
	ErrReportLoadFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Report could not be loaded, please try again",
		http.StatusServiceUnavailable,
	)
)
