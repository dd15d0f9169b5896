package live

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/jwt"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/request"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
	jwt *jwt.Service
}

func NewHandler(hub *Hub, jwtService *jwt.Service) *Handler {
	return &Handler{hub: hub, jwt: jwtService}
}

// Subscribe godoc
// @Summary Follow reservation activity of an establishment
// @Tags live
// @Param establishmentId path int true "Establishment ID"
// @Param token query string true "Access token"
// @Router /live/establishments/{establishmentId} [get]
func (h *Handler) Subscribe(c *gin.Context) {
	establishmentID, ok := request.ParamID(c, "establishmentId")
	if !ok {
		return
	}

	// Browsers cannot set headers on a websocket handshake.
	claims, err := h.jwt.ValidateToken(c.Query("token"))
	if err != nil {
		response.CustomError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		return
	}
	p := principal.Principal{UserID: claims.UserID, Role: principal.Role(claims.Role)}
	if !p.Role.Valid() {
		response.CustomError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Unknown role in token")
		return
	}
	if !p.Is(principal.Employees...) {
		response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("live: upgrade failed user_id=%d error=%v", p.UserID, err)
		return
	}
	h.hub.Serve(conn, p.UserID, establishmentID)
}
