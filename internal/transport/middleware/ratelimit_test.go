package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(10)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/applications", nil)
		req.RemoteAddr = "1.2.3.4:1234"
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(3)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/applications", nil)
		req.RemoteAddr = "5.6.7.8:1234"
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/applications", nil)
	req.RemoteAddr = "5.6.7.8:1234"
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodPost, "/applications", nil)
	req1.RemoteAddr = "9.9.9.9:1234"
	handler.ServeHTTP(first, req1)
	assert.Equal(t, http.StatusOK, first.Code)

	blocked := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/applications", nil)
	req2.RemoteAddr = "9.9.9.9:1234"
	handler.ServeHTTP(blocked, req2)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)

	other := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodPost, "/applications", nil)
	req3.RemoteAddr = "10.10.10.10:1234"
	handler.ServeHTTP(other, req3)
	assert.Equal(t, http.StatusOK, other.Code, "a different IP has its own bucket")
}
