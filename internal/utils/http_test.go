package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusOK, "", nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		call        func(c echo.Context) error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "bad request",
			call:        func(c echo.Context) error { return BadRequestResponse(c, "请输入车牌号") },
			wantCode:    http.StatusBadRequest,
			wantMessage: "请输入车牌号",
		},
		{
			name:        "forbidden default",
			call:        func(c echo.Context) error { return ForbiddenResponse(c, "") },
			wantCode:    http.StatusForbidden,
			wantMessage: "Forbidden",
		},
		{
			name:        "not found default",
			call:        func(c echo.Context) error { return NotFoundResponse(c, "") },
			wantCode:    http.StatusNotFound,
			wantMessage: "Resource not found",
		},
		{
			name:        "internal",
			call:        func(c echo.Context) error { return InternalServerErrorResponse(c, "push failed") },
			wantCode:    http.StatusInternalServerError,
			wantMessage: "push failed",
		},
		{
			name:        "unavailable default",
			call:        func(c echo.Context) error { return ServiceUnavailableResponse(c, "") },
			wantCode:    http.StatusServiceUnavailable,
			wantMessage: "Service unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestTooManyRequestsResponse(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, TooManyRequestsResponse(c, "slow down", 42))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "42", rec.Header().Get(echo.HeaderRetryAfter))
}
