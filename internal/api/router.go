package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/time/rate"

	"github.com/projecthelena/flowtest/internal/config"
	_ "github.com/projecthelena/flowtest/internal/docs"
)

// SecurityHeaders middleware adds essential security headers to all responses.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// NewRouter builds the fixture's HTTP surface. Access logs go to logger, or
// to chi's default logger when logger is nil. ctx bounds background work
// such as rate limiter cleanup. Only the docs are rate limited.
func NewRouter(ctx context.Context, cfg *config.Config, h *Handler, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	// Only trust X-Forwarded-For / X-Real-IP behind a known proxy, otherwise
	// clients could pick their own rate limit bucket.
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}

	if logger != nil {
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	} else {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)

	// Fixture routes and liveness probe (no rate limiting)
	r.Get("/", h.Greeting)
	r.Get("/health", h.Health)
	r.Get("/env", h.Env)

	if cfg.DocsEnabled {
		r.Group(func(docs chi.Router) {
			if cfg.RateLimitRPS > 0 {
				limiter := NewIPRateLimiter(ctx, rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
				docs.Use(RateLimitMiddleware(limiter))
			}
			docs.Get("/docs/*", httpSwagger.Handler(
				httpSwagger.URL("/docs/doc.json"),
			))
		})
	}

	return r
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
