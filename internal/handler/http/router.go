package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/palmnatthakarn/Admin-Dashboard/internal/service"
	"github.com/palmnatthakarn/Admin-Dashboard/pkg/health"
	"github.com/palmnatthakarn/Admin-Dashboard/pkg/httputil"
	"github.com/palmnatthakarn/Admin-Dashboard/pkg/middleware"
)

// RouterConfig holds the knobs the router needs beyond its dependencies.
type RouterConfig struct {
	ServiceName       string
	CacheMaxAge       int
	PprofAllowedCIDRs []string
}

// NewRouter creates a chi router with all catalog routes registered. All
// /api routes sit behind the readiness gate; health, metrics, and debug
// endpoints stay reachable while the catalog is still loading.
func NewRouter(catalog *service.Catalog, cfg RouterConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.Tracing(cfg.ServiceName))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))

	h := NewCatalogHandler(catalog, logger)

	probe := health.New()
	probe.Register("catalog", func(ctx context.Context) error {
		if !catalog.Ready() {
			return errors.New("catalog is still loading")
		}
		return nil
	})

	r.Get("/health", h.Health)
	r.Get("/live", probe.Live())
	r.Get("/ready", probe.Ready())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	middleware.RegisterPprof(r, cfg.PprofAllowedCIDRs, logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.EnsureReady)
		r.With(middleware.CacheControl(cfg.CacheMaxAge)).Get("/products", h.ListProducts)
		r.With(middleware.CacheControl(cfg.CacheMaxAge)).Get("/dealers", h.ListDealers)
		r.Put("/products/{itemCode}/price", h.UpdatePrice)
	})

	return r
}

// EnsureReady rejects traffic with 503 until the first catalog load has
// completed (success or empty fallback).
func (h *CatalogHandler) EnsureReady(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.catalog.Ready() {
			httputil.WriteJSON(w, http.StatusServiceUnavailable, httputil.StatusResponse{
				Success: false,
				Message: "Data is loading, please retry shortly.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
