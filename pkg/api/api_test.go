package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-assistant/shu/pkg/executor"
	"github.com/shu-assistant/shu/pkg/limiter"
	"github.com/shu-assistant/shu/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) { renderError(c, err) })
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRenderErrorPolicyDenial(t *testing.T) {
	resetAt := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	w := performWithError(t, &executor.PolicyError{
		Status:  429,
		Code:    executor.CodeRateLimited,
		Message: "rate limit exceeded",
		Decision: limiter.Decision{
			Limit:      30,
			Remaining:  0,
			RetryAfter: 42 * time.Second,
			ResetAt:    resetAt,
		},
	})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("RateLimit-Remaining"))
	assert.Equal(t, "42", w.Header().Get("Retry-After"))
	assert.Equal(t, strconv.FormatInt(resetAt.Unix(), 10), w.Header().Get("RateLimit-Reset"))
	assert.Contains(t, w.Body.String(), executor.CodeRateLimited)
}

func TestRenderErrorValidationDenial(t *testing.T) {
	w := performWithError(t, &executor.PolicyError{
		Status:  422,
		Code:    executor.CodeValidationError,
		Message: "params failed schema validation",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, w.Header().Get("RateLimit-Limit"))
}

func TestRenderErrorServiceErrors(t *testing.T) {
	w := performWithError(t, services.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performWithError(t, services.NewValidationError("schedule", "required"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "schedule")

	w = performWithError(t, errors.New("database exploded"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "exploded")
}

func TestRequireUser(t *testing.T) {
	r := gin.New()
	r.Use(requireUser())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(UserHeader, "user-7")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-7")
}
