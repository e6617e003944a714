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

type EmployeeRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEmployeeRepo(pool *pgxpool.Pool, logger *slog.Logger) *EmployeeRepo {
	return &EmployeeRepo{pool: pool, logger: logger}
}

const employeeColumns = `id, name, team_id, aso_expiry, vacation_deadline, vacation_start, vacation_end, created_at`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var (
		emp                             domain.Employee
		aso, deadline, vacStart, vacEnd *time.Time
	)
	if err := row.Scan(&emp.ID, &emp.Name, &emp.TeamID, &aso, &deadline, &vacStart, &vacEnd, &emp.CreatedAt); err != nil {
		return nil, err
	}
	emp.ASOExpiry = fromDate(aso)
	emp.VacationDeadline = fromDate(deadline)
	emp.VacationStart = fromDate(vacStart)
	emp.VacationEnd = fromDate(vacEnd)
	return &emp, nil
}

type employeeDates struct {
	aso, deadline, vacStart, vacEnd *time.Time
}

func datesOf(emp *domain.Employee) (employeeDates, error) {
	var (
		d   employeeDates
		err error
	)
	if d.aso, err = toDate(emp.ASOExpiry); err != nil {
		return d, err
	}
	if d.deadline, err = toDate(emp.VacationDeadline); err != nil {
		return d, err
	}
	if d.vacStart, err = toDate(emp.VacationStart); err != nil {
		return d, err
	}
	if d.vacEnd, err = toDate(emp.VacationEnd); err != nil {
		return d, err
	}
	return d, nil
}

func (p *EmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	const op = "postgres.Employee.Create"

	d, err := datesOf(emp)
	if err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidDate)
	}

	const query = `
		INSERT INTO employees (id, name, team_id, aso_expiry, vacation_deadline, vacation_start, vacation_end, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if emp.ID == uuid.Nil {
		emp.ID = uuid.New()
	}
	if emp.CreatedAt.IsZero() {
		emp.CreatedAt = time.Now().UTC()
	}

	_, err = p.pool.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.TeamID,
		d.aso,
		d.deadline,
		d.vacStart,
		d.vacEnd,
		emp.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *EmployeeRepo) List(ctx context.Context, page, limit int) ([]*domain.Employee, int64, error) {
	const op = "postgres.Employee.List"

	page, limit, offset := normalizePage(page, limit)

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY name, id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	items, err := collect(rows, scanEmployee)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return items, total, nil
}

// ListAll is used by the alert views, which need every record.
func (p *EmployeeRepo) ListAll(ctx context.Context) ([]*domain.Employee, error) {
	const op = "postgres.Employee.ListAll"

	rows, err := p.pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name, id`)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	items, err := collect(rows, scanEmployee)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return items, nil
}

func (p *EmployeeRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	const op = "postgres.Employee.Get"

	emp, err := scanEmployee(p.pool.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return emp, nil
}

func (p *EmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	const op = "postgres.Employee.Update"

	d, err := datesOf(emp)
	if err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidDate)
	}

	const query = `
		UPDATE employees
		SET name              = $2,
			team_id           = $3,
			aso_expiry        = $4,
			vacation_deadline = $5,
			vacation_start    = $6,
			vacation_end      = $7
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.TeamID,
		d.aso,
		d.deadline,
		d.vacStart,
		d.vacEnd,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", emp.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *EmployeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Employee.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
