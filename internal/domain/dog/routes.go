package dog

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	dogs := r.Group("/dogs")
	{
		dogs.POST("", handler.Create)
		dogs.GET("", handler.List)
		dogs.GET("/:dogId", handler.Get)
		dogs.PUT("/:dogId", handler.Update)
		dogs.DELETE("/:dogId", handler.Delete)
	}
}
