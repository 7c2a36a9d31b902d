package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/rgehrsitz/nestegg/internal/api/middleware"
	"github.com/rgehrsitz/nestegg/internal/calculation"
)

const defaultShutdownTimeout = 10 * time.Second

// Config holds the server address and its dependencies.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	Projector       calculation.Projector
}

// WebAPI is the HTTP front end of the projection engine.
type WebAPI struct {
	router  *chi.Mux
	logger  *zerolog.Logger
	server  *http.Server
	timeout time.Duration
}

// NewWebAPI builds the router and the underlying http.Server.
func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = defaultShutdownTimeout
	}
	if len(config.AllowedOrigins) == 0 {
		config.AllowedOrigins = []string{"*"}
	}

	api := &WebAPI{
		router:  chi.NewRouter(),
		logger:  &logger,
		timeout: config.ShutdownTimeout,
	}
	api.routes(NewHandler(config.Projector), config.AllowedOrigins)

	api.server = &http.Server{
		Addr:              config.Addr,
		Handler:           api.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return api
}

func (a *WebAPI) routes(h *Handler, origins []string) {
	r := a.router
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(a.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/projection", h.Project)
		r.Post("/projection/export", h.Export)
		r.Get("/templates", h.ListTemplates)
		r.Post("/compare", h.Compare)
	})
}

// Handler exposes the router, mainly for tests.
func (a *WebAPI) Handler() http.Handler {
	return a.router
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (a *WebAPI) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Run(ctx)
}

// Run serves until ctx is cancelled or the listener fails.
func (a *WebAPI) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", a.server.Addr).Msg("starting HTTP server")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			a.logger.Error().Err(err).Msg("HTTP server failed")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info().Msg("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("graceful shutdown failed, forcing close")
		return a.server.Close()
	}
	a.logger.Info().Msg("HTTP server stopped")
	return nil
}
