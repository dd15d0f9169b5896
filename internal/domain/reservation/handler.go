package reservation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/request"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/reservations
// @Summary Reserve a place in a session
// @Description Approved immediately when the session has a single place
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequest true "Reservation"
// @Success 201 {object} response.Response{data=View}
// @Failure 422 {object} response.Response
// @Router /reservations [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	v, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v)
}

// List handles GET /api/v1/reservations?sessionId=
func (h *Handler) List(c *gin.Context) {
	sessionID, err := request.QueryInt64(c, "sessionId")
	if err != nil {
		response.FromError(c, err)
		return
	}

	list, err := h.service.Find(c.Request.Context(), sessionID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.ParamID(c, "reservationId")
	if !ok {
		return
	}

	v, err := h.service.FindOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := request.ParamID(c, "reservationId")
	if !ok {
		return
	}

	var req UpdateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	v, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// Approve handles PUT /api/v1/reservations/:reservationId/approve
func (h *Handler) Approve(c *gin.Context) {
	id, ok := request.ParamID(c, "reservationId")
	if !ok {
		return
	}

	v, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.ParamID(c, "reservationId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
