package adminuser

import (
	"go-kafe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guards middleware.Guards) {
	users := r.Group("/admin/users", middleware.Chain(guards.Authenticated, guards.SuperAdmin)...)
	{
		users.GET("", guards.Authorize("admin_user", "read"), h.GetAll)
		users.POST("", guards.Authorize("admin_user", "create"), guards.Idempotency, h.Provision)
		users.GET("/:id", guards.Authorize("admin_user", "read"), h.GetByID)
		users.DELETE("/:id", guards.Authorize("admin_user", "delete"), h.Delete)
	}
}
