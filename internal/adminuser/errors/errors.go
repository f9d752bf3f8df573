package adminusererrors

import (
	"net/http"

	"go-kafe/internal/shared/apperror"
)

var (
	ErrAdminNotFound = apperror.New(
		apperror.CodeNotFound,
		"Admin not found",
		http.StatusNotFound,
	)
	ErrProfileAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"This account already has an admin profile",
		http.StatusConflict,
	)
	ErrIdempotencyKeyReused = apperror.New(
		apperror.CodeConflict,
		"Idempotency-Key was already used for a different request",
		http.StatusConflict,
	)
	// ErrProvisioningPending: an earlier attempt with the same key left an
	// orphaned identity that is still being cleaned up.
	ErrProvisioningPending = apperror.New(
		apperror.CodeConflict,
		"A previous attempt is still being rolled back, try again later",
		http.StatusConflict,
	)
	ErrProvisioningFailed = apperror.New(
		apperror.CodeInternalError,
		"Admin could not be provisioned",
		http.StatusInternalServerError,
	)
)
