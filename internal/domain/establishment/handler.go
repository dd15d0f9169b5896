package establishment

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

// Create handles POST /api/v1/establishments
// @Summary Create an establishment
// @Tags Establishments
// @Security BearerAuth
// @Router /establishments [post]
func (h *Handler) Create(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req CreateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	e, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, e)
}

// List handles GET /api/v1/establishments?ownerId=
func (h *Handler) List(c *gin.Context) {
	ownerID, err := request.QueryInt64(c, "ownerId")
	if err != nil {
		response.FromError(c, err)
		return
	}

	list, err := h.service.Find(c.Request.Context(), ownerID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.ParamID(c, "establishmentId")
	if !ok {
		return
	}

	e, err := h.service.FindOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) Update(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := request.ParamID(c, "establishmentId")
	if !ok {
		return
	}

	var req UpdateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	e, err := h.service.Update(c.Request.Context(), p, id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) Delete(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := request.ParamID(c, "establishmentId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), p, id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// AddEmployee handles POST /api/v1/establishments/:establishmentId/employees
func (h *Handler) AddEmployee(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	id, ok := request.ParamID(c, "establishmentId")
	if !ok {
		return
	}

	var req AddEmployeeRequest
	if !request.BindJSON(c, &req) {
		return
	}

	u, err := h.service.AddEmployee(c.Request.Context(), p, id, req.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u)
}

func (h *Handler) Employees(c *gin.Context) {
	id, ok := request.ParamID(c, "establishmentId")
	if !ok {
		return
	}

	list, err := h.service.Employees(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}
