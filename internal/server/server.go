// Package server wires the chi router and runs the HTTP server with
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/clipworks/video-portal-api/internal/config"
	"github.com/clipworks/video-portal-api/internal/handler"
	"github.com/clipworks/video-portal-api/internal/usecase"
	"github.com/clipworks/video-portal-api/shared/auth"
)

// Server is the portal's HTTP server.
type Server struct {
	httpServer *http.Server
	logger     zerolog.Logger
	cfg        *config.Config
}

// New builds the router and the HTTP server around it.
func New(
	cfg *config.Config,
	logger zerolog.Logger,
	h *handler.Handler,
	jwtAuth auth.JWTAuthenticator,
	authUsecase usecase.AuthUsecase,
) *Server {
	router := NewRouter(logger, h, jwtAuth, authUsecase)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
		cfg:        cfg,
	}
}

// NewRouter wires every route and middleware of the portal API.
func NewRouter(
	logger zerolog.Logger,
	h *handler.Handler,
	jwtAuth auth.JWTAuthenticator,
	authUsecase usecase.AuthUsecase,
) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(RequestLogger(logger))

	router.MethodNotAllowed(methodNotAllowed(router))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Login)

		r.Get("/users/profile", h.Profile)
		r.Get("/users/tokens", h.TokenHistory)
		r.Post("/users/heartbeat", h.Heartbeat)

		r.Get("/tokens/execution", h.ExecutionTokenSummary)

		r.Get("/videos/active", h.ActiveJobs)
		r.Patch("/videos", h.SoftDelete)
		r.Get("/videos/download", h.Download)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuth(jwtAuth, authUsecase))
			r.Get("/stats", h.AdminStats)
			r.Get("/users/{userId}", h.AdminUserDetail)
			r.Get("/storage", h.AdminStorage)
		})
	})

	return router
}

// methodNotAllowed answers 405 as JSON with an Allow header listing the
// methods the path does route.
func methodNotAllowed(router chi.Router) http.HandlerFunc {
	probeMethods := []string{
		http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range probeMethods {
			tctx := chi.NewRouteContext()
			if router.Match(tctx, method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = fmt.Fprintf(w, `{"success":false,"message":"Method %s is not allowed."}`, r.Method)
	}
}

// Run starts the server and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("http server started")

		err := s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		s.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	s.logger.Info().Msg("http server stopped")
	return nil
}
