package system

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"fieldops/internal/api/handlers/http/presenter"
	"fieldops/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=health.go -destination=mocks/mock.go
type StatsGetter interface {
	Dashboard(ctx context.Context, today time.Time) (*domain.DashboardStats, error)
}

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

type Handler struct {
	logger *slog.Logger
	Stats  StatsGetter
	checks map[string]Check
	now    func() time.Time
}

func NewHandler(logger *slog.Logger, stats StatsGetter, checks map[string]Check) *Handler {
	return &Handler{
		logger: logger,
		Stats:  stats,
		checks: checks,
		now:    time.Now,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// SystemHealth answers 200 with per dependency status, or 503 when any check fails.
func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := "ok"
	code := http.StatusOK
	deps := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.log(r).Warn("health check failed", slog.String("dependency", name), slog.Any("error", err))
			deps[name] = "down"
			status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	presenter.JSON(w, code, map[string]any{"status": status, "dependencies": deps})
}

func (h *Handler) SystemStats(w http.ResponseWriter, r *http.Request) {
	today, err := presenter.Today(r, h.now())
	if err != nil {
		presenter.Error(h.log(r), w, r, err)
		return
	}

	stats, err := h.Stats.Dashboard(r.Context(), today)
	if err != nil {
		presenter.Error(h.log(r), w, r, err)
		return
	}
	presenter.JSON(w, http.StatusOK, stats)
}
