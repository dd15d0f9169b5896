package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
)

func testContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestQueryTime(t *testing.T) {
	c, _ := testContext(http.MethodGet, "/sessions?date=2024-03-01", "")
	got, err := QueryTime(c, "date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *got)

	c, _ = testContext(http.MethodGet, "/sessions?date=2024-03-01T10:00:00%2B02:00", "")
	got, err = QueryTime(c, "date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), *got)

	c, _ = testContext(http.MethodGet, "/sessions?date=yesterday", "")
	_, err = QueryTime(c, "date")
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	c, _ = testContext(http.MethodGet, "/sessions", "")
	got, err = QueryTime(c, "date")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestQueryInt64AndBool(t *testing.T) {
	c, _ := testContext(http.MethodGet, "/sessions?educatorId=12&reserved=true&bad=x", "")

	id, err := QueryInt64(c, "educatorId")
	require.NoError(t, err)
	assert.Equal(t, int64(12), *id)

	reserved, err := QueryBool(c, "reserved")
	require.NoError(t, err)
	assert.True(t, reserved)

	_, err = QueryInt64(c, "bad")
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

type body struct {
	Name string `json:"name" validate:"required"`
}

func TestBindJSON(t *testing.T) {
	c, _ := testContext(http.MethodPost, "/", `{"name":"rex"}`)
	var ok body
	assert.True(t, BindJSON(c, &ok))
	assert.Equal(t, "rex", ok.Name)

	c, w := testContext(http.MethodPost, "/", `{"name":`)
	assert.False(t, BindJSON(c, &body{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_JSON")

	c, w = testContext(http.MethodPost, "/", `{}`)
	assert.False(t, BindJSON(c, &body{}))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}
