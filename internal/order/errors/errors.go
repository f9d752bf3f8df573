package ordererrors

import (
	"net/http"

	"go-kafe/internal/shared/apperror"
)

var (
	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)
	ErrTableNotFound = apperror.New(
		apperror.CodeNotFound,
		"Table not found",
		http.StatusNotFound,
	)
	ErrInvalidVerificationToken = apperror.FieldError(
		"verification_token",
		"Verification token is invalid",
	)
	ErrMenuUnavailable = apperror.New(
		apperror.CodeConflict,
		"Some menu items are no longer available",
		http.StatusConflict,
	)
	ErrEmptyOrder = apperror.New(
		apperror.CodeInvalidInput,
		"Order must contain at least one item",
		http.StatusBadRequest,
	)
	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Item quantity must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentMethod = apperror.New(
		apperror.CodeInvalidInput,
		"Payment method must be qris or cash",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown order status",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Order status cannot move backwards",
		http.StatusConflict,
	)
	ErrOrderClosed = apperror.New(
		apperror.CodeInvalidState,
		"Order is already delivered or cancelled",
		http.StatusConflict,
	)
	ErrInvalidCursor = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid page cursor",
		http.StatusBadRequest,
	)
)
