package holiday

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

	hol, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, hol)
}

// List handles GET /api/v1/holidays?employeeId=&establishmentId=
func (h *Handler) List(c *gin.Context) {
	var f Filter
	var err error
	if f.EmployeeID, err = request.QueryInt64(c, "employeeId"); err != nil {
		response.FromError(c, err)
		return
	}
	if f.EstablishmentID, err = request.QueryInt64(c, "establishmentId"); err != nil {
		response.FromError(c, err)
		return
	}

	list, err := h.service.Find(c.Request.Context(), f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.ParamID(c, "holidayId")
	if !ok {
		return
	}

	hol, err := h.service.FindOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hol)
}

func (h *Handler) Update(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := request.ParamID(c, "holidayId")
	if !ok {
		return
	}

	var req UpdateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	hol, err := h.service.Update(c.Request.Context(), p, id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hol)
}

func (h *Handler) Approve(c *gin.Context) {
	id, ok := request.ParamID(c, "holidayId")
	if !ok {
		return
	}

	hol, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hol)
}

func (h *Handler) Delete(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := request.ParamID(c, "holidayId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), p, id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
