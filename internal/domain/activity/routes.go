package activity

import (
	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	activities := r.Group("/activities")
	{
		activities.POST("", middleware.StaffOnly(), handler.Create)
		activities.GET("", handler.List)
		activities.GET("/:activityId", handler.Get)
		activities.PUT("/:activityId", middleware.StaffOnly(), handler.Update)
		activities.DELETE("/:activityId", middleware.StaffOnly(), handler.Delete)
	}
}
