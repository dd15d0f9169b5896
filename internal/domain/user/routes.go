package user

import (
	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/middleware"
)

// RegisterPublicRoutes registers the auth endpoints
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
	}
}

// RegisterRoutes registers user routes; r must be behind JWTAuth
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	{
		users.GET("/me", handler.Me)
		users.POST("", middleware.StaffOnly(), handler.Create)
		users.GET("", handler.List)
		users.GET("/:userId", handler.Get)
		users.PUT("/:userId", handler.Update)
		users.DELETE("/:userId", middleware.StaffOnly(), handler.Delete)
	}
}
