package tableerrors

import (
	"net/http"

	"go-kafe/internal/shared/apperror"
)

var (
	ErrTableNotFound = apperror.New(
		apperror.CodeNotFound,
		"Table not found",
		http.StatusNotFound,
	)
	ErrTableNumberTaken = apperror.New(
		apperror.CodeConflict,
		"Table number is already used",
		http.StatusConflict,
	)
	ErrInvalidTableStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Table status must be available or occupied",
		http.StatusBadRequest,
	)
	ErrQRCodeFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to render QR code",
		http.StatusInternalServerError,
	)
)
