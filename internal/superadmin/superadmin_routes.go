package superadmin

import (
	"go-kafe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guards middleware.Guards) {
	r.GET("/admin/me", middleware.Chain(guards.Authenticated,
		guards.SuperAdmin,
		guards.Authorize("superadmin", "read"),
		h.Me,
	)...)
}
