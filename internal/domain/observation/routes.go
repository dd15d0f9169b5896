package observation

import (
	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	observations := r.Group("/observations")
	{
		observations.POST("", middleware.EmployeesOnly(), handler.Create)
		observations.GET("", handler.List)
		observations.GET("/:observationId", handler.Get)
		observations.PUT("/:observationId", middleware.EmployeesOnly(), handler.Update)
		observations.DELETE("/:observationId", middleware.EmployeesOnly(), handler.Delete)
	}
}
