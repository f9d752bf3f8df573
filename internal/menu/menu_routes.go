package menu

import (
	"go-kafe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guards middleware.Guards) {
	admin := r.Group("/kafe/:slug/admin", middleware.Chain(guards.Authenticated, guards.TenantAdmin)...)

	categories := admin.Group("/categories")
	{
		categories.GET("", guards.Authorize("category", "read"), h.ListCategories)
		categories.POST("", guards.Authorize("category", "create"), h.CreateCategory)
		categories.PUT("/:id", guards.Authorize("category", "update"), h.UpdateCategory)
		categories.DELETE("/:id", guards.Authorize("category", "delete"), h.DeleteCategory)
	}

	menus := admin.Group("/menu")
	{
		menus.GET("", guards.Authorize("menu", "read"), h.ListMenus)
		menus.POST("", guards.Authorize("menu", "create"), h.CreateMenu)
		menus.GET("/:id", guards.Authorize("menu", "read"), h.GetMenu)
		menus.PUT("/:id", guards.Authorize("menu", "update"), h.UpdateMenu)
		menus.PATCH("/:id/availability", guards.Authorize("menu", "update"), h.SetAvailability)
		menus.DELETE("/:id", guards.Authorize("menu", "delete"), h.DeleteMenu)
	}

	r.GET("/public/:slug/tables/:tableId/menu", middleware.Chain(guards.Public, guards.PublicTenant, h.PublicMenu)...)
}
