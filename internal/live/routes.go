package live

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the feed outside the bearer-token group; the handler
// authenticates from the query string.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/live/establishments/:establishmentId", h.Subscribe)
}
