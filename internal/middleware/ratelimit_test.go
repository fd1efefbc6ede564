package middleware_test

import (
	"contacts-web-server/internal/middleware"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLimiter : считает запросы по ключу в памяти
type countingLimiter struct {
	counts map[string]int
	err    error
	keys   []string
}

func (c *countingLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	c.keys = append(c.keys, key)
	if c.err != nil {
		return false, 0, c.err
	}
	c.counts[key]++
	if c.counts[key] > limit {
		return false, window - 1500*time.Millisecond, nil
	}
	return true, 0, nil
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func requestFrom(remoteAddr string) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	request.RemoteAddr = remoteAddr
	return request
}

func TestRateLimit(t *testing.T) {
	limiter := &countingLimiter{counts: map[string]int{}}
	handler := middleware.RateLimit(limiter, middleware.Limit{Name: "me", Times: 1, Window: 20 * time.Second})(okHandler)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, requestFrom("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, requestFrom("10.0.0.1:5001"))
	require.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "19", recorder.Header().Get("Retry-After"))

	// другой клиент считается отдельно
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, requestFrom("10.0.0.2:5000"))
	assert.Equal(t, http.StatusOK, recorder.Code)

	assert.Equal(t, []string{"me:10.0.0.1", "me:10.0.0.1", "me:10.0.0.2"}, limiter.keys)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	limiter := &countingLimiter{counts: map[string]int{}, err: errors.New("redis down")}
	handler := middleware.RateLimit(limiter, middleware.Limit{Name: "me", Times: 1, Window: time.Second})(okHandler)

	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, requestFrom("10.0.0.1:5000"))
		assert.Equal(t, http.StatusOK, recorder.Code)
	}
}
