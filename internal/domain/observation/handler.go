package observation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/middleware"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/request"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req CreateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	o, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, o)
}

// List handles GET /api/v1/observations?dogId=
func (h *Handler) List(c *gin.Context) {
	dogID, err := request.QueryInt64(c, "dogId")
	if err != nil {
		response.FromError(c, err)
		return
	}

	list, err := h.service.Find(c.Request.Context(), dogID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.ParamID(c, "observationId")
	if !ok {
		return
	}

	o, err := h.service.FindOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := request.ParamID(c, "observationId")
	if !ok {
		return
	}

	var req UpdateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	o, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.ParamID(c, "observationId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
