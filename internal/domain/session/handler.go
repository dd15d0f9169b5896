package session

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

// Create handles POST /api/v1/sessions
// @Summary Schedule a session
// @Description End date is computed from the activity duration
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequest true "Session"
// @Success 201 {object} response.Response{data=View}
// @Failure 422 {object} response.Response
// @Router /sessions [post]
func (h *Handler) Create(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req CreateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	v, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v)
}

// WriteReport handles POST /api/v1/sessions/:sessionId/report
// @Summary Write the educator report of a session
// @Tags Sessions
// @Security BearerAuth
// @Success 201 {object} response.Response{data=View}
// @Failure 404 {object} response.Response
// @Router /sessions/{sessionId}/report [post]
func (h *Handler) WriteReport(c *gin.Context) {
	id, ok := request.ParamID(c, "sessionId")
	if !ok {
		return
	}

	var req ReportRequest
	if !request.BindJSON(c, &req) {
		return
	}

	v, err := h.service.WriteReport(c.Request.Context(), id, req.Report)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v)
}

// List handles GET /api/v1/sessions
// @Summary List sessions
// @Tags Sessions
// @Security BearerAuth
// @Param educatorId query int false "Educator"
// @Param activityId query int false "Activity"
// @Param establishmentId query int false "Establishment"
// @Param date query string false "Day start, RFC 3339 or YYYY-MM-DD"
// @Param reserved query bool false "Only sessions with reservations (with establishmentId)"
// @Success 200 {object} response.Response{data=[]View}
// @Router /sessions [get]
func (h *Handler) List(c *gin.Context) {
	var q FindQuery
	var err error

	if q.EducatorID, err = request.QueryInt64(c, "educatorId"); err != nil {
		response.FromError(c, err)
		return
	}
	if q.ActivityID, err = request.QueryInt64(c, "activityId"); err != nil {
		response.FromError(c, err)
		return
	}
	if q.EstablishmentID, err = request.QueryInt64(c, "establishmentId"); err != nil {
		response.FromError(c, err)
		return
	}
	if q.Date, err = request.QueryTime(c, "date"); err != nil {
		response.FromError(c, err)
		return
	}
	if q.Reserved, err = request.QueryBool(c, "reserved"); err != nil {
		response.FromError(c, err)
		return
	}

	list, err := h.service.Find(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.ParamID(c, "sessionId")
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

// RemainingPlaces handles GET /api/v1/sessions/:sessionId/remaining-places
func (h *Handler) RemainingPlaces(c *gin.Context) {
	id, ok := request.ParamID(c, "sessionId")
	if !ok {
		return
	}

	left, err := h.service.FindPlacesLeft(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, left)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := request.ParamID(c, "sessionId")
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

func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.ParamID(c, "sessionId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, DeletedResponse{Deleted: 1})
}

// DeleteByEducator handles DELETE /api/v1/sessions/educators/:educatorId
func (h *Handler) DeleteByEducator(c *gin.Context) {
	id, ok := request.ParamID(c, "educatorId")
	if !ok {
		return
	}

	n, err := h.service.DeleteByEducator(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, DeletedResponse{Deleted: n})
}

// DeleteByActivity handles DELETE /api/v1/sessions/activities/:activityId
func (h *Handler) DeleteByActivity(c *gin.Context) {
	id, ok := request.ParamID(c, "activityId")
	if !ok {
		return
	}

	n, err := h.service.DeleteByActivity(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, DeletedResponse{Deleted: n})
}
