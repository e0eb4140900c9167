package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-event-planner/internal/config"
	"github.com/MKhiriev/go-event-planner/internal/logger"
	"github.com/MKhiriev/go-event-planner/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_SameIPSharesBucket(t *testing.T) {
	rl := newIPRateLimiter(1, 2)

	assert.Same(t, rl.getLimiter("10.0.0.1"), rl.getLimiter("10.0.0.1"))
	assert.NotSame(t, rl.getLimiter("10.0.0.1"), rl.getLimiter("10.0.0.2"))
	assert.Equal(t, 2, rl.size())
}

func TestIPRateLimiter_SweepDropsIdleVisitors(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newIPRateLimiter(1, 1)
	rl.now = func() time.Time { return now }
	rl.lastSweep = now

	rl.getLimiter("10.0.0.1")
	now = now.Add(visitorIdleTTL / 2)
	rl.getLimiter("10.0.0.2")
	assert.Equal(t, 2, rl.size())

	// first visitor is idle past the TTL, second is not
	now = now.Add(visitorIdleTTL/2 + time.Minute)
	rl.getLimiter("10.0.0.2")

	assert.Equal(t, 1, rl.size())
}

func TestWithAuthRateLimit(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{AuthRateLimit: 0.001, AuthRateBurst: 2}, logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := h.withAuthRateLimit(next)

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/login", nil))
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send("192.0.2.1:1000").Code)
	assert.Equal(t, http.StatusOK, send("192.0.2.1:1001").Code, "port does not split the bucket")

	rec := send("192.0.2.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests", decodeError(t, rec))

	assert.Equal(t, http.StatusOK, send("192.0.2.2:1000").Code, "other clients keep their own bucket")
	assert.Equal(t, http.StatusOK, send("no-port").Code)
}
