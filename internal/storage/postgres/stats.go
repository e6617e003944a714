package postgres

import (
	"context"
	"log/slog"

	"fieldops/internal/domain"
	"fieldops/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

// Counts fills the table counters of the dashboard. Alert counts are derived
// in the service layer.
func (p *StatsRepo) Counts(ctx context.Context) (domain.DashboardStats, error) {
	const op = "postgres.Stats.Counts"

	const query = `
		SELECT
			(SELECT COUNT(*) FROM teams),
			(SELECT COUNT(*) FROM emergencies WHERE status = 'open'),
			(SELECT COUNT(*) FROM emergencies WHERE status = 'open' AND selected_team_id IS NULL),
			(SELECT COUNT(*) FROM employees)
	`

	var s domain.DashboardStats
	err := p.pool.QueryRow(ctx, query).Scan(
		&s.Teams,
		&s.OpenEmergencies,
		&s.UnassignedEmergencies,
		&s.Employees,
	)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return domain.DashboardStats{}, e.WrapError(ctx, op, err)
	}

	return s, nil
}
