package live

import (
	"context"
	"net/http"

	"go-kafe/internal/middleware"
	"go-kafe/internal/shared/apperror"
	"go-kafe/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderChecker confirms an order belongs to the tenant before a customer
// may follow it.
type OrderChecker interface {
	OrderExists(ctx context.Context, tenantID, orderID string) error
}

var errUnknownChannel = apperror.New(
	apperror.CodeInvalidInput,
	"Unknown live channel",
	http.StatusBadRequest,
)

type Handler struct {
	hub    *Hub
	orders OrderChecker
	logger *zap.Logger
}

func NewHandler(hub *Hub, orders OrderChecker, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("live.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("live.handler")
	}
	return &Handler{hub: hub, orders: orders, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("live subscription rejected",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Admin streams one of the tenant's channels to the dashboard.
func (h *Handler) Admin(c *gin.Context) {
	channel := c.DefaultQuery("channel", ChannelOrders)
	if !ValidChannel(channel) {
		h.writeServiceError(c, errUnknownChannel)
		return
	}
	h.hub.Serve(c.Writer, c.Request, c.GetString(middleware.CtxTenant), channel)
}

// PublicMenu streams menu changes to customers on the ordering page.
func (h *Handler) PublicMenu(c *gin.Context) {
	h.hub.Serve(c.Writer, c.Request, c.GetString(middleware.CtxTenant), ChannelMenus)
}

// PublicOrder streams status changes of a single order.
func (h *Handler) PublicOrder(c *gin.Context) {
	tenantID := c.GetString(middleware.CtxTenant)
	orderID := c.Param("orderId")
	if err := h.orders.OrderExists(c.Request.Context(), tenantID, orderID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.hub.Serve(c.Writer, c.Request, tenantID, OrderChannel(orderID))
}
