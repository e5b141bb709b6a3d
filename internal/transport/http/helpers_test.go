package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/ruoomkr/platform/internal/audit"
	"github.com/ruoomkr/platform/internal/chathistory"
	"github.com/ruoomkr/platform/internal/observability/metrics"
	"github.com/ruoomkr/platform/internal/onboarding"
	"github.com/ruoomkr/platform/internal/session"
	"github.com/ruoomkr/platform/internal/tenant"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace/noop"
)

// memTenants is an in-memory tenant store for handler tests.
type memTenants struct {
	mu      sync.Mutex
	tenants map[string]*tenant.Tenant
	spaces  map[string][]*tenant.Space
	roles   []*tenant.TenantUserRole
	failing bool
}

func newMemTenants() *memTenants {
	return &memTenants{
		tenants: make(map[string]*tenant.Tenant),
		spaces:  make(map[string][]*tenant.Space),
	}
}

func (m *memTenants) GetByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tenants[id]
	if !ok {
		return nil, tenant.ErrTenantNotFound
	}
	return t, nil
}

func (m *memTenants) ListByOwner(ctx context.Context, ownerID string) ([]*tenant.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*tenant.Tenant
	for _, t := range m.tenants {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTenants) ListByTenant(ctx context.Context, tenantID string) ([]*tenant.Space, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.spaces[tenantID], nil
}

func (m *memTenants) AssignRole(ctx context.Context, role *tenant.TenantUserRole) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles = append(m.roles, role)
	return nil
}

func (m *memTenants) RevokeRole(ctx context.Context, tenantID, userID, role string) error {
	return nil
}

func (m *memTenants) GetUserRoles(ctx context.Context, tenantID, userID string) ([]*tenant.TenantUserRole, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*tenant.TenantUserRole
	for _, r := range m.roles {
		if r.TenantID == tenantID && r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memTenants) GetTenantUsers(ctx context.Context, tenantID string) ([]*tenant.TenantUserRole, error) {
	return nil, nil
}

func (m *memTenants) Provision(ctx context.Context, t *tenant.Tenant, first *tenant.Space, owner *tenant.TenantUserRole) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return context.DeadlineExceeded
	}
	m.tenants[t.ID] = t
	m.spaces[t.ID] = append(m.spaces[t.ID], first)
	m.roles = append(m.roles, owner)
	return nil
}

func (m *memTenants) setFailing(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing = v
}

// recordingAudit keeps every event it receives.
type recordingAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *recordingAudit) Log(ctx context.Context, event audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
}

func (a *recordingAudit) types() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.events))
	for i, e := range a.events {
		out[i] = e.Type
	}
	return out
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

const testCookie = "ruoom_session"

type testEnv struct {
	server  *httptest.Server
	handler *Handler
	tenants *memTenants
	audit   *recordingAudit
	chat    *chathistory.MemoryStore
}

type envOption func(*envConfig)

type envConfig struct {
	rps    float64
	burst  int
	static bool
	ping   pingFunc
}

func withRateLimit(rps float64, burst int) envOption {
	return func(c *envConfig) { c.rps, c.burst = rps, burst }
}

func withStatic() envOption { return func(c *envConfig) { c.static = true } }

func withPing(p pingFunc) envOption { return func(c *envConfig) { c.ping = p } }

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	cfg := envConfig{rps: 1000, burst: 1000, ping: func(context.Context) error { return nil }}
	for _, o := range opts {
		o(&cfg)
	}

	recorder := &recordingAudit{}
	tenants := newMemTenants()
	tenantSvc := tenant.NewService(tenants, tenants, tenants, tenants, recorder)

	instruments, err := metrics.NewOnboarding(metricnoop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	registry := onboarding.NewRegistry(time.Hour, 0)
	onboardingSvc := onboarding.NewService(registry, tenantSvc.ProvisionFunc(), recorder,
		noop.NewTracerProvider().Tracer("test"), instruments, onboarding.Config{})

	chat := chathistory.NewMemoryStore(3)
	sessionSvc := session.NewService(session.NewMemoryRepository(), time.Hour, 30*time.Minute)

	h := NewHandler(sessionSvc, onboardingSvc, tenantSvc, chat, recorder, cfg.ping, SessionConfig{
		CookieName:     testCookie,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
		MaxAge:         time.Hour,
	})

	rl := NewRateLimiter(cfg.rps, cfg.burst)
	var static fs.FS
	if cfg.static {
		static = fstest.MapFS{
			"index.html":    {Data: []byte("<html>ruoom</html>")},
			"assets/app.js": {Data: []byte("console.log('ruoom')")},
		}
	}
	router := NewRouter(h, rl, static)

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		srv.Close()
		rl.Close()
		registry.Close()
	})

	return &testEnv{server: srv, handler: h, tenants: tenants, audit: recorder, chat: chat}
}

// do sends a request with the CSRF header set. A non-empty cookie is sent as the session.
func (e *testEnv) do(t *testing.T, method, path, cookie string, body any) *http.Response {
	t.Helper()
	var rdr *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, e.server.URL+path, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRF-Token", "1")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}
	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// signIn creates a session for email and returns its cookie value.
func (e *testEnv) signIn(t *testing.T, email string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/v1/auth/session", "", map[string]string{"email": email})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			return c.Value
		}
	}
	t.Fatalf("no %s cookie set", testCookie)
	return ""
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}
