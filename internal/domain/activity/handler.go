package activity

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

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, a)
}

func (h *Handler) List(c *gin.Context) {
	establishmentID, err := request.QueryInt64(c, "establishmentId")
	if err != nil {
		response.FromError(c, err)
		return
	}

	list, err := h.service.Find(c.Request.Context(), establishmentID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.ParamID(c, "activityId")
	if !ok {
		return
	}

	a, err := h.service.FindOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := request.ParamID(c, "activityId")
	if !ok {
		return
	}

	var req UpdateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.ParamID(c, "activityId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
