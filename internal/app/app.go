package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/palmnatthakarn/Admin-Dashboard/internal/config"
	"github.com/palmnatthakarn/Admin-Dashboard/internal/domain"
	handler "github.com/palmnatthakarn/Admin-Dashboard/internal/handler/http"
	"github.com/palmnatthakarn/Admin-Dashboard/internal/service"
	"github.com/palmnatthakarn/Admin-Dashboard/internal/store"
	"github.com/palmnatthakarn/Admin-Dashboard/pkg/tracing"
)

const serviceName = "catalog-api"

// App wires together all dependencies and runs the catalog API.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *store.Store
	httpServer *http.Server

	shutdownTracing func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
// The catalog itself is not loaded here; Run starts the load off the request
// path so the server can begin listening immediately.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	shutdownTracing, err := tracing.InitTracer(context.Background(), tracing.Config{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	st := store.New(domain.DefaultDealerNames(), logger)
	catalog := service.NewCatalog(st, cfg.MaxPerPage, logger)

	router := handler.NewRouter(catalog, handler.RouterConfig{
		ServiceName:       serviceName,
		CacheMaxAge:       cfg.CacheMaxAgeSeconds,
		PprofAllowedCIDRs: cfg.PprofAllowedCIDRs,
	}, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		store:           st,
		httpServer:      httpServer,
		shutdownTracing: shutdownTracing,
	}, nil
}

// Run starts the HTTP server and kicks off the initial catalog load,
// blocking until the context is canceled. SIGHUP triggers a reload that
// swaps the snapshot atomically under the store's lock.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// The initial load runs off the request path; the readiness gate holds
	// traffic until it finishes (success or empty fallback).
	go func() {
		_ = a.store.Load(a.cfg.ProductsPath)
	}()

	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	defer signal.Stop(reload)
	go func() {
		for range reload {
			a.logger.Info("SIGHUP received, reloading catalog")
			_ = a.store.Load(a.cfg.ProductsPath)
		}
	}()

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if err := a.shutdownTracing(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
