package live

import (
	"go-kafe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guards middleware.Guards) {
	r.GET("/kafe/:slug/admin/live",
		middleware.Chain(guards.Authenticated, guards.TenantAdmin, guards.Authorize("live", "read"), h.Admin)...)

	r.GET("/public/:slug/menu/live", middleware.Chain(guards.Public, guards.PublicTenant, h.PublicMenu)...)
	r.GET("/public/:slug/orders/:orderId/live", middleware.Chain(guards.Public, guards.PublicTenant, h.PublicOrder)...)
}
