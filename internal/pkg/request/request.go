// Package request holds the path, query and body parsing shared by handlers.
package request

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/response"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

// ParamID reads a positive integer path parameter. On failure the 400
// envelope is already written.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.CustomError(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}

// BindJSON decodes the body and runs struct validation: 400 INVALID_JSON on a
// malformed body or unknown field, 422 VALIDATION_ERROR on failed tags.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return false
	}
	if errs := validator.Validate(dst); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return false
	}
	return true
}

// QueryInt64 returns nil when the parameter is absent.
func QueryInt64(c *gin.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, apperr.BadRequest("invalid query parameter "+name, err)
	}
	return &v, nil
}

func QueryBool(c *gin.Context, name string) (bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperr.BadRequest("invalid query parameter "+name, err)
	}
	return v, nil
}

// QueryTime accepts RFC 3339 timestamps and plain dates (midnight UTC).
func QueryTime(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, apperr.BadRequest("invalid query parameter "+name, err)
	}
	return &t, nil
}
