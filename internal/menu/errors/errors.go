package menuerrors

import (
	"net/http"

	"go-kafe/internal/shared/apperror"
)

var (
	ErrMenuNotFound = apperror.New(
		apperror.CodeNotFound,
		"Menu not found",
		http.StatusNotFound,
	)
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Category not found",
		http.StatusNotFound,
	)
	ErrCategoryNameTaken = apperror.New(
		apperror.CodeConflict,
		"A category with this name already exists",
		http.StatusConflict,
	)
	ErrCategoryInUse = apperror.New(
		apperror.CodeConflict,
		"Category still has menus",
		http.StatusConflict,
	)
	ErrInvalidPrice = apperror.New(
		apperror.CodeInvalidInput,
		"Price must not be negative",
		http.StatusBadRequest,
	)
)
