package report

import (
	"go-kafe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guards middleware.Guards) {
	reports := r.Group("/kafe/:slug/admin/reports", middleware.Chain(guards.Authenticated, guards.TenantAdmin)...)
	{
		reports.GET("/summary", guards.Authorize("report", "read"), h.Summary)
		reports.GET("/today", guards.Authorize("report", "read"), h.Today)
	}
}
