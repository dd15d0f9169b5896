package establishment

import (
	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	establishments := r.Group("/establishments")
	{
		establishments.POST("", middleware.StaffOnly(), handler.Create)
		establishments.GET("", handler.List)
		establishments.GET("/:establishmentId", handler.Get)
		establishments.PUT("/:establishmentId", middleware.StaffOnly(), handler.Update)
		establishments.DELETE("/:establishmentId", middleware.StaffOnly(), handler.Delete)
		establishments.POST("/:establishmentId/employees", middleware.StaffOnly(), handler.AddEmployee)
		establishments.GET("/:establishmentId/employees", handler.Employees)
	}
}
