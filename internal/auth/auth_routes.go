package auth

import (
	"go-kafe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards middleware.Guards) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.Chain(guards.Public, middleware.RateLimitByIP(0.2, 5), handler.Login)...)
		auth.POST("/refresh", middleware.Chain(guards.Public, middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)...)
		auth.POST("/logout", middleware.Chain(guards.Public, handler.Logout)...)
		auth.GET("/me", middleware.Chain(guards.Authenticated, middleware.RateLimitByUser(2, 5), handler.Me)...)
	}
}
