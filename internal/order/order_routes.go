package order

import (
	"go-kafe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guards middleware.Guards) {
	r.POST("/public/:slug/tables/:tableId/orders",
		middleware.Chain(guards.Public, guards.CheckoutLimit, guards.PublicTenant, guards.Idempotency, h.Checkout)...)
	r.GET("/public/:slug/orders/:orderId",
		middleware.Chain(guards.Public, guards.PublicTenant, h.GetPublic)...)

	orders := r.Group("/kafe/:slug/admin/orders", middleware.Chain(guards.Authenticated, guards.TenantAdmin)...)
	{
		orders.GET("", guards.Authorize("order", "read"), h.GetAll)
		orders.GET("/:id", guards.Authorize("order", "read"), h.GetByID)
		orders.GET("/:id/history", guards.Authorize("order", "read"), h.History)
		orders.PATCH("/:id/status", guards.Authorize("order", "update"), h.UpdateStatus)
		orders.PATCH("/:id/payment", guards.Authorize("order", "update"), h.SetPayment)
	}
}
