package tenant

import (
	"go-kafe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guards middleware.Guards) {
	tenants := r.Group("/admin/tenants", middleware.Chain(guards.Authenticated, guards.SuperAdmin)...)
	{
		tenants.GET("", guards.Authorize("tenant", "read"), h.GetAll)
		tenants.POST("", guards.Authorize("tenant", "create"), h.Create)
		tenants.GET("/:id", guards.Authorize("tenant", "read"), h.GetByID)
		tenants.PUT("/:id", guards.Authorize("tenant", "update"), h.Update)
		tenants.DELETE("/:id", guards.Authorize("tenant", "delete"), h.Delete)
	}

	settings := r.Group("/kafe/:slug/admin/settings", middleware.Chain(guards.Authenticated, guards.TenantAdmin)...)
	{
		settings.GET("", guards.Authorize("settings", "read"), h.GetSettings)
		settings.PUT("", guards.Authorize("settings", "update"), h.UpdateSettings)
		settings.POST("/daily-token", guards.Authorize("settings", "update"), h.RotateDailyToken)
	}

	r.GET("/public/:slug", middleware.Chain(guards.Public, guards.PublicTenant, h.GetPublic)...)
}
