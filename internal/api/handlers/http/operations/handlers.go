package operations

import (
	"context"
	"log/slog"
	"net/http"

	"fieldops/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Teams interface {
	Create(ctx context.Context, req domain.CreateTeamRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateTeamRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Emergencies interface {
	Create(ctx context.Context, req domain.CreateEmergencyRequest) (uuid.UUID, error)
	List(ctx context.Context, req domain.ListEmergenciesRequest) ([]*domain.Emergency, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Emergency, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateEmergencyRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Close(ctx context.Context, id uuid.UUID) error
	SelectTeam(ctx context.Context, id uuid.UUID, teamID *uuid.UUID) error
	Dispatch(ctx context.Context) (*domain.DispatchPlan, error)
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

type Handler struct {
	logger      *slog.Logger
	Teams       Teams
	Emergencies Emergencies
	Renderer    Renderer
}

func NewHandler(logger *slog.Logger, teams Teams, emergencies Emergencies, renderer Renderer) *Handler {
	return &Handler{
		logger:      logger,
		Teams:       teams,
		Emergencies: emergencies,
		Renderer:    renderer,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}
