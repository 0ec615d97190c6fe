package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"traveling-message/internal/core/ports"
	"traveling-message/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRateLimitedRouter(counter ports.AttemptCounter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/submit", RateLimiter(counter, 12, time.Minute, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRateLimiter_Allows(t *testing.T) {
	ctrl := gomock.NewController(t)
	counter := mocks.NewMockAttemptCounter(ctrl)
	counter.EXPECT().Allow(gomock.Any(), gomock.Any(), int64(12), time.Minute).
		Return(&ports.RateLimitResult{Allowed: true, Limit: 12, Remaining: 11, ResetAt: time.Now().Add(time.Minute).Unix()}, nil)

	w := httptest.NewRecorder()
	setupRateLimitedRouter(counter).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "11", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_Denies(t *testing.T) {
	ctrl := gomock.NewController(t)
	counter := mocks.NewMockAttemptCounter(ctrl)
	counter.EXPECT().Allow(gomock.Any(), gomock.Any(), int64(12), time.Minute).
		Return(&ports.RateLimitResult{Allowed: false, Limit: 12, Remaining: 0, ResetAt: time.Now().Add(30 * time.Second).Unix()}, nil)

	w := httptest.NewRecorder()
	setupRateLimitedRouter(counter).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests. Try again later."}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_AllowsWhenCounterDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	counter := mocks.NewMockAttemptCounter(ctrl)
	counter.EXPECT().Allow(gomock.Any(), gomock.Any(), int64(12), time.Minute).
		Return(nil, errors.New("redis: connection refused"))

	w := httptest.NewRecorder()
	setupRateLimitedRouter(counter).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
