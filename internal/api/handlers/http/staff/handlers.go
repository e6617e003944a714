package staff

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fieldops/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Employees interface {
	Create(ctx context.Context, req domain.CreateEmployeeRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Employee, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateEmployeeRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Alerts(ctx context.Context, id uuid.UUID, today time.Time) (*domain.EmployeeAlerts, error)
	AlertsAll(ctx context.Context, today time.Time, severity string) ([]domain.EmployeeAlerts, error)
}

type Handler struct {
	logger    *slog.Logger
	Employees Employees
	now       func() time.Time
}

func NewHandler(logger *slog.Logger, employees Employees) *Handler {
	return &Handler{
		logger:    logger,
		Employees: employees,
		now:       time.Now,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}
