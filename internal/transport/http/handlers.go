// @title Ruoom Platform API
// @version 1.0.0
// @description Business onboarding and tenant provisioning for Ruoom KR
// @termsOfService https://ruoom.kr/terms

// @contact.name Ruoom Support
// @contact.url https://ruoom.kr/support
// @contact.email support@ruoom.kr

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name ruoom_session

package http

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ruoomkr/platform/internal/audit"
	"github.com/ruoomkr/platform/internal/chathistory"
	"github.com/ruoomkr/platform/internal/observability/logger"
	"github.com/ruoomkr/platform/internal/onboarding"
	"github.com/ruoomkr/platform/internal/session"
	"github.com/ruoomkr/platform/internal/tenant"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds HTTP handlers and dependencies
type Handler struct {
	sessionService    *session.Service
	onboardingService *onboarding.Service
	tenantService     *tenant.Service
	chatStore         chathistory.Store
	auditLogger       audit.Logger
	db                Pinger
	sessionConfig     SessionConfig
}

// SessionConfig holds session cookie configuration
type SessionConfig struct {
	CookieName     string
	CookieDomain   string
	CookiePath     string
	CookieSecure   bool
	CookieHTTPOnly bool
	CookieSameSite http.SameSite
	MaxAge         time.Duration
}

// NewHandler creates a new HTTP handler
func NewHandler(
	sessionService *session.Service,
	onboardingService *onboarding.Service,
	tenantService *tenant.Service,
	chatStore chathistory.Store,
	auditLogger audit.Logger,
	db Pinger,
	sessionConfig SessionConfig,
) *Handler {
	return &Handler{
		sessionService:    sessionService,
		onboardingService: onboardingService,
		tenantService:     tenantService,
		chatStore:         chatStore,
		auditLogger:       auditLogger,
		db:                db,
		sessionConfig:     sessionConfig,
	}
}

// NewRouter creates a new HTTP router. When static is non-nil the web client is served
// from it for every path outside the API.
func NewRouter(h *Handler, rateLimiter *RateLimiter, static fs.FS) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(RateLimitMiddleware(rateLimiter))
	r.Use(func(handler http.Handler) http.Handler {
		return otelhttp.NewHandler(handler, "http_request",
			otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	})
	r.Use(LoggingMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.CSRFMiddleware)

		// Public catalog
		r.Route("/options", func(r chi.Router) {
			r.Get("/business-types", h.ListBusinessTypes)
			r.Get("/categories", h.ListCategories)
			r.Get("/space-types", h.ListSpaceTypes)
			r.Get("/amenities", h.ListAmenities)
		})
		r.Get("/templates", h.ListTemplates)

		r.Post("/auth/session", h.CreateSession)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(h.AuthMiddleware)

			r.Post("/auth/logout", h.Logout)
			r.Get("/auth/me", h.GetCurrentUser)

			r.Route("/onboarding", func(r chi.Router) {
				r.Post("/", h.StartOnboarding)
				r.Route("/{wizardID}", func(r chi.Router) {
					r.Get("/", h.GetOnboarding)
					r.Delete("/", h.DiscardOnboarding)
					r.Patch("/fields", h.SetOnboardingField)
					r.Post("/toggle", h.ToggleOnboardingField)
					r.Post("/blur", h.BlurOnboardingField)
					r.Post("/next", h.NextOnboardingStep)
					r.Post("/back", h.PreviousOnboardingStep)
				})
			})

			r.Route("/tenants", func(r chi.Router) {
				r.Get("/", h.ListTenants)
				r.Route("/{tenantID}", func(r chi.Router) {
					r.Use(h.RequireTenantAccess)
					r.Get("/", h.GetTenant)
					r.Get("/spaces", h.ListTenantSpaces)
				})
			})

			r.Route("/chat/history", func(r chi.Router) {
				r.Get("/", h.GetChatHistory)
				r.Post("/", h.AppendChatMessage)
				r.Delete("/", h.ClearChatHistory)
			})
		})
	})

	if static != nil {
		r.Handle("/*", NewSPAHandler(static))
	}

	return r
}

// HealthCheck returns the health status
// @Summary Health Check
// @Description Checks if the service and its database are up
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			slog.ErrorContext(r.Context(), "health check failed", logger.Component("database"), logger.Error(err))
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":  "unhealthy",
				"service": "ruoom-platform",
			})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "ruoom-platform",
	})
}

// Helper functions
func (h *Handler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	maxAge := h.sessionConfig.MaxAge
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionConfig.CookieName,
		Value:    sessionID,
		Path:     h.sessionConfig.CookiePath,
		Domain:   h.sessionConfig.CookieDomain,
		Secure:   h.sessionConfig.CookieSecure,
		HttpOnly: h.sessionConfig.CookieHTTPOnly,
		SameSite: h.sessionConfig.CookieSameSite,
		MaxAge:   int(maxAge.Seconds()),
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   h.sessionConfig.CookieName,
		Value:  "",
		Path:   h.sessionConfig.CookiePath,
		Domain: h.sessionConfig.CookieDomain,
		MaxAge: -1,
	})
}

func (h *Handler) getSessionFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(h.sessionConfig.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", logger.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

func getIPAddress(r *http.Request) string {
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return getClientIP(r)
}
