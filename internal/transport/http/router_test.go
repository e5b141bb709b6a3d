package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	transportHTTP "github.com/ruoomkr/platform/internal/transport/http"
)

// TestRouter_Routes verifies that every API endpoint is mounted with the expected method.
func TestRouter_Routes(t *testing.T) {
	// Handlers are never executed here, only matched
	h := &transportHTTP.Handler{}
	rl := transportHTTP.NewRateLimiter(100, 100)
	defer rl.Close()
	r := transportHTTP.NewRouter(h, rl, nil)

	tests := []struct {
		method      string
		path        string
		expectFound bool
	}{
		{"GET", "/health", true},
		{"POST", "/api/v1/auth/session", true},
		{"POST", "/api/v1/auth/logout", true},
		{"GET", "/api/v1/auth/me", true},
		{"GET", "/api/v1/options/business-types", true},
		{"GET", "/api/v1/options/categories", true},
		{"GET", "/api/v1/options/space-types", true},
		{"GET", "/api/v1/options/amenities", true},
		{"GET", "/api/v1/templates", true},
		{"POST", "/api/v1/onboarding", true},
		{"GET", "/api/v1/onboarding/w1", true},
		{"PATCH", "/api/v1/onboarding/w1/fields", true},
		{"POST", "/api/v1/onboarding/w1/toggle", true},
		{"POST", "/api/v1/onboarding/w1/blur", true},
		{"POST", "/api/v1/onboarding/w1/next", true},
		{"POST", "/api/v1/onboarding/w1/back", true},
		{"DELETE", "/api/v1/onboarding/w1", true},
		{"GET", "/api/v1/tenants", true},
		{"GET", "/api/v1/tenants/t1", true},
		{"GET", "/api/v1/tenants/t1/spaces", true},
		{"GET", "/api/v1/chat/history", true},
		{"POST", "/api/v1/chat/history", true},
		{"DELETE", "/api/v1/chat/history", true},

		{"POST", "/api/v1/tenants", false},
		{"PUT", "/api/v1/onboarding/w1/fields", false},
		{"GET", "/api/v1/onboarding/w1/next", false},
		{"POST", "/api/v1/auth/login", false},
		{"GET", "/index.html", false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rctx := chi.NewRouteContext()
			if r.Match(rctx, req.Method, req.URL.Path) {
				if !tt.expectFound {
					t.Errorf("route %s %s SHOULD NOT exist", tt.method, tt.path)
				}
			} else if tt.expectFound {
				t.Errorf("route %s %s SHOULD exist", tt.method, tt.path)
			}
		})
	}
}
