package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(okHandler(), mark("first"), mark("second"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestCORSPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	CORS(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/encode", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiterWindow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(ctx, 2, time.Minute)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "limits are per IP")

	now = now.Add(61 * time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))

	now = now.Add(2 * time.Minute)
	rl.sweep()
	assert.Empty(t, rl.requests)
}

func TestRateLimiterSweepKeepsLiveRequests(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	rl := NewRateLimiter(ctx, 2, time.Minute)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	now = start.Add(50 * time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))

	now = start.Add(70 * time.Second)
	rl.sweep()
	assert.Len(t, rl.requests["10.0.0.1"], 1)

	assert.True(t, rl.Allow("10.0.0.1"), "one request in the window leaves room for another")
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimitMiddleware(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := RateLimit(NewRateLimiter(ctx, 1, time.Minute))(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/encode", nil)
	req.Header.Set("X-Real-IP", "192.0.2.7")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	Chain(okHandler(), RequestLogger(log)).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/rulesets", nil))

	assert.Contains(t, buf.String(), "path=/api/v1/rulesets")
	assert.Contains(t, buf.String(), "status=418")
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 26)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "trace-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "trace-42", seen)
	assert.Equal(t, "trace-42", rec.Header().Get(RequestIDHeader))

	assert.Empty(t, RequestIDFrom(context.Background()))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.4:5123"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	assert.Equal(t, "198.51.100.4", ClientIP(req))

	req.Header.Set("X-Real-IP", " 203.0.113.1 ")
	assert.Equal(t, "203.0.113.1", ClientIP(req))
}
