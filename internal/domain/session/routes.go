package session

import (
	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/middleware"
)

// RegisterRoutes registers session routes; r must be behind JWTAuth
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	sessions := r.Group("/sessions")
	{
		sessions.POST("", middleware.EmployeesOnly(), handler.Create)
		sessions.POST("/:sessionId/report", middleware.EmployeesOnly(), handler.WriteReport)
		sessions.GET("", handler.List)
		sessions.GET("/:sessionId", handler.Get)
		sessions.GET("/:sessionId/remaining-places", handler.RemainingPlaces)
		sessions.PUT("/:sessionId", middleware.EmployeesOnly(), handler.Update)
		sessions.DELETE("/:sessionId", middleware.EmployeesOnly(), handler.Delete)
		sessions.DELETE("/educators/:educatorId", middleware.StaffOnly(), handler.DeleteByEducator)
		sessions.DELETE("/activities/:activityId", middleware.StaffOnly(), handler.DeleteByActivity)
	}
}
