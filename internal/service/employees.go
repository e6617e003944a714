package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fieldops/internal/compliance"
	"fieldops/internal/domain"
	"fieldops/pkg/e"

	"github.com/google/uuid"
)

type EmployeeManager struct {
	repo      EmployeeRepository
	evaluator compliance.Evaluator
	logger    *slog.Logger
	now       func() time.Time
}

// NewEmployeeManager evaluates alerts with a lookahead of windowDays.
func NewEmployeeManager(repo EmployeeRepository, windowDays int, logger *slog.Logger) *EmployeeManager {
	return &EmployeeManager{
		repo:      repo,
		evaluator: compliance.Evaluator{Window: windowDays},
		logger:    logger,
		now:       time.Now,
	}
}

// normalizeDate parses an incoming date and renders it as YYYY-MM-DD.
// Nil and blank both mean "not set".
func normalizeDate(field string, v *string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	d, err := compliance.ParseDate(*v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", e.ErrInvalidDate, field, err)
	}
	if d == nil {
		return nil, nil
	}
	s := compliance.FormatDate(*d)
	return &s, nil
}

func recordOf(emp *domain.Employee) (compliance.Record, error) {
	rec, err := compliance.NewRecord(
		deref(emp.ASOExpiry),
		deref(emp.VacationDeadline),
		deref(emp.VacationStart),
		deref(emp.VacationEnd),
	)
	if err != nil {
		return compliance.Record{}, fmt.Errorf("%w: employee %s: %w", e.ErrInvalidDate, emp.ID, err)
	}
	return rec, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func checkVacation(emp *domain.Employee) error {
	rec, err := recordOf(emp)
	if err != nil {
		return err
	}
	if rec.VacationStart != nil && rec.VacationEnd != nil && rec.VacationEnd.Before(*rec.VacationStart) {
		return fmt.Errorf("%w: vacation_end is before vacation_start", e.ErrInvalidInput)
	}
	return nil
}

func (s *EmployeeManager) Create(ctx context.Context, req domain.CreateEmployeeRequest) (uuid.UUID, error) {
	emp := &domain.Employee{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		TeamID:    req.TeamID,
		CreatedAt: s.now().UTC(),
	}

	var err error
	if emp.ASOExpiry, err = normalizeDate("aso_expiry", req.ASOExpiry); err != nil {
		return uuid.Nil, err
	}
	if emp.VacationDeadline, err = normalizeDate("vacation_deadline", req.VacationDeadline); err != nil {
		return uuid.Nil, err
	}
	if emp.VacationStart, err = normalizeDate("vacation_start", req.VacationStart); err != nil {
		return uuid.Nil, err
	}
	if emp.VacationEnd, err = normalizeDate("vacation_end", req.VacationEnd); err != nil {
		return uuid.Nil, err
	}
	if err := checkVacation(emp); err != nil {
		return uuid.Nil, err
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		return uuid.Nil, err
	}
	return emp.ID, nil
}

func (s *EmployeeManager) List(ctx context.Context, page, limit int) ([]*domain.Employee, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *EmployeeManager) Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	return s.repo.Get(ctx, id)
}

// parseTeamID maps "" to no team.
func parseTeamID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: team_id %q", e.ErrInvalidInput, raw)
	}
	return &id, nil
}

// Update applies only the fields present in req. An empty date or team_id
// clears it.
func (s *EmployeeManager) Update(ctx context.Context, id uuid.UUID, req domain.UpdateEmployeeRequest) error {
	emp, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.TeamID != nil {
		if emp.TeamID, err = parseTeamID(*req.TeamID); err != nil {
			return err
		}
	}

	dates := []struct {
		field string
		in    *string
		out   **string
	}{
		{"aso_expiry", req.ASOExpiry, &emp.ASOExpiry},
		{"vacation_deadline", req.VacationDeadline, &emp.VacationDeadline},
		{"vacation_start", req.VacationStart, &emp.VacationStart},
		{"vacation_end", req.VacationEnd, &emp.VacationEnd},
	}
	for _, d := range dates {
		if d.in == nil {
			continue
		}
		if *d.out, err = normalizeDate(d.field, d.in); err != nil {
			return err
		}
	}
	if err := checkVacation(emp); err != nil {
		return err
	}

	return s.repo.Update(ctx, emp)
}

func (s *EmployeeManager) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *EmployeeManager) evaluate(emp *domain.Employee, today time.Time) (domain.EmployeeAlerts, []compliance.Alert, error) {
	rec, err := recordOf(emp)
	if err != nil {
		return domain.EmployeeAlerts{}, nil, err
	}
	alerts := s.evaluator.Evaluate(rec, today)

	out := domain.EmployeeAlerts{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Alerts:     make([]domain.Alert, 0, len(alerts)),
	}
	for _, a := range alerts {
		out.Alerts = append(out.Alerts, domain.Alert{Severity: string(a.Severity), Message: a.Message})
	}
	if worst, ok := compliance.Worst(alerts); ok {
		out.Worst = string(worst)
	}
	return out, alerts, nil
}

func (s *EmployeeManager) Alerts(ctx context.Context, id uuid.UUID, today time.Time) (*domain.EmployeeAlerts, error) {
	emp, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out, _, err := s.evaluate(emp, today)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AlertsAll lists employees with at least one alert. A non-empty severity
// keeps only employees with an alert of that severity.
func (s *EmployeeManager) AlertsAll(ctx context.Context, today time.Time, severity string) ([]domain.EmployeeAlerts, error) {
	sev := compliance.Severity(severity)
	if severity != "" && !sev.Valid() {
		return nil, fmt.Errorf("%w: unknown severity %q", e.ErrInvalidInput, severity)
	}

	employees, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.EmployeeAlerts, 0)
	for _, emp := range employees {
		view, alerts, err := s.evaluate(emp, today)
		if err != nil {
			s.logger.Warn("skipping employee with unreadable dates",
				slog.String("employee_id", emp.ID.String()),
				slog.Any("error", err),
			)
			continue
		}
		if len(alerts) == 0 {
			continue
		}
		if severity != "" && !compliance.Has(alerts, sev) {
			continue
		}
		out = append(out, view)
	}
	return out, nil
}
