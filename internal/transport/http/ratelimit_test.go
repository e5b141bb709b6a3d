package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

// TestPurpose: Validates that clients exceeding the burst are throttled.
// Scope: Unit Test
// Security: Abuse prevention
// Expected: Requests past the burst return 429 while a different client IP is unaffected.
// Test Case ID: RL-01
func TestRateLimit_ThrottlesPerClient(t *testing.T) {
	env := newTestEnv(t, withRateLimit(0.001, 2))

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/health", "", nil).StatusCode)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/health", "", nil).StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, env.do(t, http.MethodGet, "/health", "", nil).StatusCode)

	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/health", nil)
	assert.NoError(t, err)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	resp, err := env.server.Client().Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRateLimiter_CloseStopsCleanup(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	rl := NewRateLimiter(10, 10)
	rl.GetLimiter("198.51.100.1")
	rl.Close()
	rl.Close()
}

func TestGetClientIP(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:54321"
	assert.Equal(t, "192.0.2.1", getClientIP(r))

	r.Header.Set("X-Forwarded-For", " 203.0.113.9 , 10.0.0.1")
	assert.Equal(t, "203.0.113.9", getClientIP(r))
}
