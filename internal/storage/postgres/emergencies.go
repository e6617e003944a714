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

type EmergencyRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEmergencyRepo(pool *pgxpool.Pool, logger *slog.Logger) *EmergencyRepo {
	return &EmergencyRepo{pool: pool, logger: logger}
}

const emergencyColumns = `id, title, lat, lng, status, selected_team_id, created_at`

func scanEmergency(row pgx.Row) (*domain.Emergency, error) {
	var em domain.Emergency
	if err := row.Scan(&em.ID, &em.Title, &em.Lat, &em.Lng, &em.Status, &em.SelectedTeamID, &em.CreatedAt); err != nil {
		return nil, err
	}
	return &em, nil
}

func (p *EmergencyRepo) Create(ctx context.Context, em *domain.Emergency) error {
	const op = "postgres.Emergency.Create"

	const query = `
		INSERT INTO emergencies (id, title, lat, lng, status, selected_team_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if em.ID == uuid.Nil {
		em.ID = uuid.New()
	}
	if em.CreatedAt.IsZero() {
		em.CreatedAt = time.Now().UTC()
	}
	if em.Status == "" {
		em.Status = domain.EmergencyOpen
	}

	_, err := p.pool.Exec(ctx, query,
		em.ID,
		em.Title,
		em.Lat,
		em.Lng,
		em.Status,
		em.SelectedTeamID,
		em.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// List pages through emergencies, newest first. An empty status lists all.
func (p *EmergencyRepo) List(ctx context.Context, status domain.EmergencyStatus, page, limit int) ([]*domain.Emergency, int64, error) {
	const op = "postgres.Emergency.List"

	page, limit, offset := normalizePage(page, limit)

	const countQuery = `SELECT COUNT(*) FROM emergencies WHERE ($1 = '' OR status = $1)`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, string(status)).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT ` + emergencyColumns + `
		FROM emergencies
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`

	rows, err := p.pool.Query(ctx, listQuery, string(status), limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	items, err := collect(rows, scanEmergency)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return items, total, nil
}

// ListOpen returns open emergencies oldest first; the dispatcher serves them
// in this order.
func (p *EmergencyRepo) ListOpen(ctx context.Context) ([]*domain.Emergency, error) {
	const op = "postgres.Emergency.ListOpen"

	const query = `
		SELECT ` + emergencyColumns + `
		FROM emergencies
		WHERE status = 'open'
		ORDER BY created_at, id
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	items, err := collect(rows, scanEmergency)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return items, nil
}

func (p *EmergencyRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Emergency, error) {
	const op = "postgres.Emergency.Get"

	const query = `SELECT ` + emergencyColumns + ` FROM emergencies WHERE id = $1`

	em, err := scanEmergency(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return em, nil
}

func (p *EmergencyRepo) Update(ctx context.Context, em *domain.Emergency) error {
	const op = "postgres.Emergency.Update"

	const query = `
		UPDATE emergencies
		SET title = $2,
			lat   = $3,
			lng   = $4
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, em.ID, em.Title, em.Lat, em.Lng)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", em.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// SelectTeam stores the operator's pick; a nil teamID clears it.
func (p *EmergencyRepo) SelectTeam(ctx context.Context, id uuid.UUID, teamID *uuid.UUID) error {
	const op = "postgres.Emergency.SelectTeam"

	const query = `UPDATE emergencies SET selected_team_id = $2 WHERE id = $1 AND status = 'open'`

	cmd, err := p.pool.Exec(ctx, query, id, teamID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *EmergencyRepo) Close(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Emergency.Close"

	const query = `
		UPDATE emergencies
		SET status = 'closed'
		WHERE id = $1 AND status = 'open'
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *EmergencyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Emergency.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM emergencies WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
