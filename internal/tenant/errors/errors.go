package tenanterrors

import (
	"net/http"

	"go-kafe/internal/shared/apperror"
)

var (
	ErrTenantNotFound = apperror.New(
		apperror.CodeNotFound,
		"Tenant not found",
		http.StatusNotFound,
	)
	ErrTenantLoadFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Tenant could not be loaded, please try again",
		http.StatusServiceUnavailable,
	)
	ErrTenantSlugTaken = apperror.New(
		apperror.CodeConflict,
		"Another tenant already uses this name",
		http.StatusConflict,
	)
	ErrInvalidTenantName = apperror.New(
		apperror.CodeInvalidInput,
		"Tenant name must contain at least one letter or digit",
		http.StatusBadRequest,
	)
	ErrInvalidTenantID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid tenant ID",
		http.StatusBadRequest,
	)
	ErrInvalidDailyToken = apperror.New(
		apperror.CodeInvalidInput,
		"Daily token must be exactly 4 digits",
		http.StatusBadRequest,
	)
	ErrTenantInUse = apperror.New(
		apperror.CodeConflict,
		"Tenant still has admin accounts assigned",
		http.StatusConflict,
	)
)
