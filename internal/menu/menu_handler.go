package menu

import (
	"context"
	"net/http"

	"go-kafe/internal/middleware"
	"go-kafe/internal/shared/apperror"
	"go-kafe/internal/shared/response"
	"go-kafe/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TableLookup resolves a table of the tenant to its number.
type TableLookup interface {
	TableNumber(ctx context.Context, tenantID, tableID string) (int, error)
}

type Handler struct {
	service Service
	tables  TableLookup
	logger  *zap.Logger
}

func NewHandler(service Service, tables TableLookup, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("menu.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("menu.handler")
	}
	return &Handler{service: service, tables: tables, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("menu request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("menu request validation failed", zap.Error(err))
	h.writeServiceError(c, apperror.MapValidationError(err))
}

func (h *Handler) ListCategories(c *gin.Context) {
	resp, err := h.service.ListCategories(c.Request.Context(), c.GetString(middleware.CtxTenant))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.CreateCategory(c.Request.Context(), c.GetString(middleware.CtxTenant), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.UpdateCategory(c.Request.Context(), c.GetString(middleware.CtxTenant), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c.Request.Context(), c.GetString(middleware.CtxTenant), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListMenus(c *gin.Context) {
	resp, err := h.service.ListMenus(c.Request.Context(), c.GetString(middleware.CtxTenant))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMenu(c *gin.Context) {
	resp, err := h.service.GetMenu(c.Request.Context(), c.GetString(middleware.CtxTenant), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateMenu(c *gin.Context) {
	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.CreateMenu(c.Request.Context(), c.GetString(middleware.CtxTenant), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateMenu(c *gin.Context) {
	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.UpdateMenu(c.Request.Context(), c.GetString(middleware.CtxTenant), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteMenu(c *gin.Context) {
	if err := h.service.DeleteMenu(c.Request.Context(), c.GetString(middleware.CtxTenant), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) SetAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.SetAvailability(c.Request.Context(), c.GetString(middleware.CtxTenant), c.Param("id"), *req.Available)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// PublicMenu serves the ordering page of one table.
func (h *Handler) PublicMenu(c *gin.Context) {
	res, ok := tenant.PublicFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrNotFound)
		return
	}
	ctx := c.Request.Context()
	tenantID := res.Tenant.ID.String()
	tableID := c.Param("tableId")

	number, err := h.tables.TableNumber(ctx, tenantID, tableID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	sections, err := h.service.PublicCatalog(ctx, tenantID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, PublicMenuResponse{
		Tenant:      tenant.MapToPublicResponse(*res.Tenant, res.Canonical),
		TableID:     tableID,
		TableNumber: number,
		Sections:    sections,
	}, nil)
}
