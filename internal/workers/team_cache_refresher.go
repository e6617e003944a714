package workers

import (
	"context"
	"log/slog"
	"time"
)

type TeamRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// TeamCacheRefresher periodically reloads the team snapshot so the dispatch
// board never serves a cache older than one interval.
type TeamCacheRefresher struct {
	teams    TeamRefresher
	interval time.Duration
	logger   *slog.Logger
}

func NewTeamCacheRefresher(teams TeamRefresher, interval time.Duration, logger *slog.Logger) *TeamCacheRefresher {
	return &TeamCacheRefresher{
		teams:    teams,
		interval: interval,
		logger:   logger,
	}
}

// Run refreshes once immediately, then on every tick until ctx is done.
func (w *TeamCacheRefresher) Run(ctx context.Context) {
	w.logger.Info("team cache refresher started", slog.Duration("interval", w.interval))

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("team cache refresher stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *TeamCacheRefresher) refresh(ctx context.Context) {
	n, err := w.teams.Refresh(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Warn("team cache refresh failed", slog.Any("error", err))
		return
	}
	w.logger.Debug("team cache refreshed", slog.Int("teams", n))
}
