package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskflow/config"
	"taskflow/internal/delivery/api/response"
	"taskflow/internal/domain/entity"
	domainerrors "taskflow/internal/domain/errors"
	mockSvc "taskflow/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_RendersErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantCode    string
		wantFields  map[string]string
	}{
		{
			name:        "validation error",
			err:         domainerrors.NewValidationError(map[string]string{"title": "Title is required"}),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation Error.",
			wantCode:    "VALIDATION_FAILED",
			wantFields:  map[string]string{"title": "Title is required"},
		},
		{
			name:        "wrapped app error",
			err:         errors.Wrap(domainerrors.ErrTaskNotFound, "find task"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Task not found.",
			wantCode:    "TASK_NOT_FOUND",
		},
		{
			name:        "internal error hides cause",
			err:         domainerrors.NewInternalError(errors.New("pq: relation does not exist")),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error.",
			wantCode:    "INTERNAL_ERROR",
		},
		{
			name:        "echo http error",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Not Found",
			wantCode:    "HTTP_ERROR",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error.",
			wantCode:    "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			e.GET("/", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantFields, body.Errors)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	identity := entity.Identity{UserID: uuid.New(), Email: "ada@example.com"}

	tests := []struct {
		name        string
		header      string
		setup       func(tokenSvc *mockSvc.MockTokenService)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Please login.",
		},
		{
			name:        "wrong scheme",
			header:      "Basic abc",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized.",
		},
		{
			name:        "empty token",
			header:      "Bearer ",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized.",
		},
		{
			name:   "invalid token",
			header: "Bearer forged",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().VerifyAccess("forged").Return(entity.Identity{}, false)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized.",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().VerifyAccess("good").Return(identity, true)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			e := newTestEcho()
			e.GET("/", func(c echo.Context) error {
				got, ok := GetIdentity(c)
				require.True(t, ok)
				assert.Equal(t, identity, got)

				return c.NoContent(http.StatusOK)
			}, NewAuthMiddleware(tokenSvc).Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, rec).Message)
			}
		})
	}
}

func TestRateLimitMiddleware_RejectsBurstOverflow(t *testing.T) {
	limiter := newRateLimitMiddleware(&config.RateLimitConfig{
		Enabled:    true,
		RPS:        0.001,
		Burst:      2,
		VisitorTTL: time.Minute,
	}, newDiscardLogger())

	e := newTestEcho()
	e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, limiter.Limit)

	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234"), "other clients keep their own bucket")
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	limiter := newRateLimitMiddleware(&config.RateLimitConfig{Enabled: false}, newDiscardLogger())

	e := newTestEcho()
	e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, limiter.Limit)

	for range 20 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimitMiddleware_CleanupEvictsStaleVisitors(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter := newRateLimitMiddleware(&config.RateLimitConfig{
		Enabled:    true,
		RPS:        5,
		Burst:      10,
		VisitorTTL: time.Minute,
	}, newDiscardLogger())
	limiter.now = func() time.Time { return now }

	limiter.limiterFor("10.0.0.1")
	now = now.Add(2 * time.Minute)
	limiter.limiterFor("10.0.0.2")

	limiter.cleanup()

	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "10.0.0.2")
}
