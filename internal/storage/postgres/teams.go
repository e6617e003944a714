package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fieldops/internal/domain"
	"fieldops/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTeamRepo(pool *pgxpool.Pool, logger *slog.Logger) *TeamRepo {
	return &TeamRepo{pool: pool, logger: logger}
}

const teamColumns = `id, name, lat, lng, color, members, created_at`

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var t domain.Team
	if err := row.Scan(&t.ID, &t.Name, &t.Lat, &t.Lng, &t.Color, &t.Members, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (p *TeamRepo) Create(ctx context.Context, team *domain.Team) error {
	const op = "postgres.Team.Create"

	const query = `
		INSERT INTO teams (id, name, lat, lng, color, members, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}
	if team.CreatedAt.IsZero() {
		team.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		team.ID,
		team.Name,
		team.Lat,
		team.Lng,
		team.Color,
		team.Members,
		team.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// List returns every team in creation order. That order is the tie-break
// order for equally distant teams.
func (p *TeamRepo) List(ctx context.Context) ([]*domain.Team, error) {
	const op = "postgres.Team.List"

	const query = `SELECT ` + teamColumns + ` FROM teams ORDER BY created_at, id`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	teams, err := collect(rows, scanTeam)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return teams, nil
}

func (p *TeamRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	const op = "postgres.Team.Get"

	const query = `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

	team, err := scanTeam(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return team, nil
}

func (p *TeamRepo) Update(ctx context.Context, team *domain.Team) error {
	const op = "postgres.Team.Update"

	const query = `
		UPDATE teams
		SET name    = $2,
			lat     = $3,
			lng     = $4,
			color   = $5,
			members = $6
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		team.ID,
		team.Name,
		team.Lat,
		team.Lng,
		team.Color,
		team.Members,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", team.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// Delete removes the team. Emergencies and employees pointing at it lose the
// reference through ON DELETE SET NULL.
func (p *TeamRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Team.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
