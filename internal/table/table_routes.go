package table

import (
	"go-kafe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guards middleware.Guards) {
	tables := r.Group("/kafe/:slug/admin/tables", middleware.Chain(guards.Authenticated, guards.TenantAdmin)...)
	{
		tables.GET("", guards.Authorize("table", "read"), h.GetAll)
		tables.POST("", guards.Authorize("table", "create"), h.Create)
		tables.GET("/:id", guards.Authorize("table", "read"), h.GetByID)
		tables.GET("/:id/qr.png", guards.Authorize("table", "read"), h.QRCode)
		tables.PUT("/:id", guards.Authorize("table", "update"), h.Update)
		tables.PATCH("/:id/status", guards.Authorize("table", "update"), h.SetStatus)
		tables.DELETE("/:id", guards.Authorize("table", "delete"), h.Delete)
	}
}
