package superadmin

import (
	"net/http"

	"go-kafe/internal/middleware"
	"go-kafe/internal/shared/apperror"
	"go-kafe/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("superadmin.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("superadmin.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.Me(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("super admin me failed", zap.Int("status", httpErr.Status), zap.String("code", httpErr.Code))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
