package payment

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/request"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary      Open a checkout for a reservation
// @Description  Creates a payment and a signed checkout link
// @Tags         Payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body CreateRequest true "Reservation to pay"
// @Success      201 {object} response.Response{data=Payment}
// @Failure      422 {object} response.Response
// @Router       /payments [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if !request.BindJSON(c, &req) {
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// Result godoc
// @Summary      Gateway result callback
// @Description  Validates the signature and amount, marks the payment as paid (idempotent)
// @Tags         Payments
// @Produce      plain
// @Param        OutSum formData string true "Amount"
// @Param        InvId formData integer true "Invoice ID"
// @Param        SignatureValue formData string true "MD5 signature"
// @Success      200 {string} string "OK{InvId}"
// @Failure      400 {string} string "bad request"
// @Failure      403 {string} string "forbidden"
// @Router       /payments/result [post]
func (h *Handler) Result(c *gin.Context) {
	rawBody, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(strings.NewReader(string(rawBody)))

	invID, err := strconv.ParseInt(c.PostForm("InvId"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	ack, err := h.service.HandleResult(c.Request.Context(), ResultCallback{
		OutSum:    c.PostForm("OutSum"),
		InvID:     invID,
		Signature: c.PostForm("SignatureValue"),
		RawBody:   string(rawBody),
	})
	if err != nil {
		log.Printf("payment: result callback failed inv_id=%d err=%v", invID, err)
		switch {
		case errors.Is(err, apperr.ErrForbidden):
			c.String(http.StatusForbidden, "forbidden")
		case errors.Is(err, apperr.ErrNotFound):
			c.String(http.StatusNotFound, "not found")
		default:
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}
	c.String(http.StatusOK, ack)
}

// List handles GET /api/v1/payments?reservationId=
func (h *Handler) List(c *gin.Context) {
	reservationID, err := request.QueryInt64(c, "reservationId")
	if err != nil {
		response.FromError(c, err)
		return
	}

	list, err := h.service.Find(c.Request.Context(), reservationID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.ParamID(c, "paymentId")
	if !ok {
		return
	}

	p, err := h.service.FindOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}
