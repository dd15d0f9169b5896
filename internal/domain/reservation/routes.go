package reservation

import (
	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/middleware"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	booking := middleware.RequireRole(principal.RoleAdministrator, principal.RoleManager, principal.RoleClient)
	approval := middleware.RequireRole(principal.RoleAdministrator, principal.RoleManager, principal.RoleEducator)

	reservations := r.Group("/reservations")
	{
		reservations.POST("", booking, handler.Create)
		reservations.GET("", handler.List)
		reservations.GET("/:reservationId", handler.Get)
		reservations.PUT("/:reservationId", booking, handler.Update)
		reservations.PUT("/:reservationId/approve", approval, handler.Approve)
		reservations.DELETE("/:reservationId", booking, handler.Delete)
	}
}
