package holiday

import (
	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	holidays := r.Group("/holidays", middleware.EmployeesOnly())
	{
		holidays.POST("", handler.Create)
		holidays.GET("", handler.List)
		holidays.GET("/:holidayId", handler.Get)
		holidays.PUT("/:holidayId", handler.Update)
		holidays.PUT("/:holidayId/approve", middleware.StaffOnly(), handler.Approve)
		holidays.DELETE("/:holidayId", handler.Delete)
	}
}
