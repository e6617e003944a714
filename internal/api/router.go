package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"fieldops/internal/api/handlers/http/operations"
	"fieldops/internal/api/handlers/http/staff"
	"fieldops/internal/api/handlers/http/system"
	"fieldops/internal/config"
	"fieldops/internal/middleware"
	"fieldops/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, renderer operations.Renderer, checks map[string]system.Check) *Server {
	operationsHandler := operations.NewHandler(logger, svc.Teams, svc.Emergencies, renderer)
	staffHandler := staff.NewHandler(logger, svc.Employees)
	systemHandler := system.NewHandler(logger, svc.Stats, checks)

	r := InitRouter(ctx, cfg, operationsHandler, staffHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// InitRouter mounts every route under /api/v1. Reads are open; writes need
// the API key and share a stricter rate limit.
func InitRouter(ctx context.Context, cfg *config.Config, ops *operations.Handler, staffHandler *staff.Handler, sys *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	readLimit := middleware.Limit(ctx, cfg.RateLimit.ReadRPS, cfg.RateLimit.ReadBurst, cfg.RateLimit.TTL, logger)
	writeLimit := middleware.Limit(ctx, cfg.RateLimit.WriteRPS, cfg.RateLimit.WriteBurst, cfg.RateLimit.TTL, logger)
	writer := func(g chi.Router) {
		g.Use(middleware.APIKeyMiddleware(cfg.APIKey))
		g.Use(writeLimit)
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/teams", func(tr chi.Router) {
			tr.With(readLimit).Get("/", ops.TeamList)
			tr.With(readLimit).Get("/{id}", ops.TeamGet)
			tr.Group(func(g chi.Router) {
				writer(g)
				g.Post("/", ops.TeamCreate)
				g.Put("/{id}", ops.TeamUpdate)
				g.Delete("/{id}", ops.TeamDelete)
			})
		})

		api.Route("/emergencies", func(er chi.Router) {
			er.With(readLimit).Get("/", ops.EmergencyList)
			er.With(readLimit).Get("/{id}", ops.EmergencyGet)
			er.Group(func(g chi.Router) {
				writer(g)
				g.Post("/", ops.EmergencyCreate)
				g.Put("/{id}", ops.EmergencyUpdate)
				g.Delete("/{id}", ops.EmergencyDelete)
				g.Put("/{id}/team", ops.EmergencySelectTeam)
				g.Post("/{id}/close", ops.EmergencyClose)
			})
		})

		api.Route("/dispatch", func(dr chi.Router) {
			dr.Use(readLimit)
			dr.Get("/", ops.DispatchPlan)
			dr.Get("/board", ops.DispatchBoard)
		})

		api.Route("/employees", func(sr chi.Router) {
			sr.With(readLimit).Get("/", staffHandler.EmployeeList)
			sr.With(readLimit).Get("/{id}", staffHandler.EmployeeGet)
			sr.With(readLimit).Get("/{id}/alerts", staffHandler.EmployeeAlerts)
			sr.Group(func(g chi.Router) {
				writer(g)
				g.Post("/", staffHandler.EmployeeCreate)
				g.Put("/{id}", staffHandler.EmployeeUpdate)
				g.Delete("/{id}", staffHandler.EmployeeDelete)
			})
		})

		api.With(readLimit).Get("/alerts", staffHandler.AlertList)
		api.With(readLimit).Get("/stats", sys.SystemStats)
		api.Get("/health", sys.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
