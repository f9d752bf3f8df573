package superadminerrors

import (
	"net/http"

	"go-kafe/internal/shared/apperror"
)

var (
	ErrSuperAdminNotFound = apperror.New(
		apperror.CodeNotFound,
		"Super admin not found",
		http.StatusNotFound,
	)
	// ErrBootstrapRejected is returned when the one-time bootstrap slot is
	// already used.
	ErrBootstrapRejected = apperror.New(
		apperror.CodePermissionDenied,
		"Super admin bootstrap is not allowed",
		http.StatusForbidden,
	)
)
