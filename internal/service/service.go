package service

import (
	"context"
	"time"

	"fieldops/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type TeamService interface {
	Create(ctx context.Context, req domain.CreateTeamRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateTeamRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Snapshot(ctx context.Context) ([]*domain.Team, error)
	Refresh(ctx context.Context) (int, error)
}

type EmergencyService interface {
	Create(ctx context.Context, req domain.CreateEmergencyRequest) (uuid.UUID, error)
	List(ctx context.Context, req domain.ListEmergenciesRequest) ([]*domain.Emergency, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Emergency, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateEmergencyRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Close(ctx context.Context, id uuid.UUID) error
	SelectTeam(ctx context.Context, id uuid.UUID, teamID *uuid.UUID) error
	Dispatch(ctx context.Context) (*domain.DispatchPlan, error)
}

type EmployeeService interface {
	Create(ctx context.Context, req domain.CreateEmployeeRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Employee, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateEmployeeRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Alerts(ctx context.Context, id uuid.UUID, today time.Time) (*domain.EmployeeAlerts, error)
	AlertsAll(ctx context.Context, today time.Time, severity string) ([]domain.EmployeeAlerts, error)
}

type StatsService interface {
	Dashboard(ctx context.Context, today time.Time) (*domain.DashboardStats, error)
}

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	List(ctx context.Context) ([]*domain.Team, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TeamCache interface {
	GetAll(ctx context.Context) ([]*domain.Team, error)
	SetAll(ctx context.Context, teams []*domain.Team) error
	Invalidate(ctx context.Context) error
}

// TeamDirectory is the read side of TeamService used by dispatch.
type TeamDirectory interface {
	Snapshot(ctx context.Context) ([]*domain.Team, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Team, error)
}

type EmergencyRepository interface {
	Create(ctx context.Context, em *domain.Emergency) error
	List(ctx context.Context, status domain.EmergencyStatus, page, limit int) ([]*domain.Emergency, int64, error)
	ListOpen(ctx context.Context) ([]*domain.Emergency, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Emergency, error)
	Update(ctx context.Context, em *domain.Emergency) error
	SelectTeam(ctx context.Context, id uuid.UUID, teamID *uuid.UUID) error
	Close(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	List(ctx context.Context, page, limit int) ([]*domain.Employee, int64, error)
	ListAll(ctx context.Context) ([]*domain.Employee, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsRepository interface {
	Counts(ctx context.Context) (domain.DashboardStats, error)
}

// AlertLister is the part of EmployeeService the dashboard needs.
type AlertLister interface {
	AlertsAll(ctx context.Context, today time.Time, severity string) ([]domain.EmployeeAlerts, error)
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, n domain.DispatchNotification) error
}

type NotificationSource interface {
	Pop(ctx context.Context, timeout time.Duration) (domain.DispatchNotification, error)
}

type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// EventRecorder keeps a history of delivered dispatch notifications.
type EventRecorder interface {
	RecordDispatch(n domain.DispatchNotification)
}

type Service struct {
	Teams       TeamService
	Emergencies EmergencyService
	Employees   EmployeeService
	Stats       StatsService
}

func NewService(
	teams TeamService,
	emergencies EmergencyService,
	employees EmployeeService,
	stats StatsService,
) *Service {
	return &Service{
		Teams:       teams,
		Emergencies: emergencies,
		Employees:   employees,
		Stats:       stats,
	}
}
