package payment

import (
	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/middleware"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

// RegisterPublicRoutes mounts the gateway callback, which carries no token.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/payments/result", handler.Result)
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payments := r.Group("/payments")
	{
		payments.POST("", middleware.RequireRole(principal.RoleAdministrator, principal.RoleManager, principal.RoleClient), handler.Create)
		payments.GET("", handler.List)
		payments.GET("/:paymentId", handler.Get)
	}
}
