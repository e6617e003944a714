package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"fieldops/internal/api/handlers/http/operations"
	mock_operations "fieldops/internal/api/handlers/http/operations/mocks"
	"fieldops/internal/api/handlers/http/staff"
	mock_staff "fieldops/internal/api/handlers/http/staff/mocks"
	"fieldops/internal/api/handlers/http/system"
	mock_system "fieldops/internal/api/handlers/http/system/mocks"
	"fieldops/internal/config"
	"fieldops/internal/domain"
)

const testKey = "secret"

type routerFixture struct {
	teams  *mock_operations.MockTeams
	router http.Handler
}

func newRouterFixture(t *testing.T, writeBurst int) routerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	teams := mock_operations.NewMockTeams(ctrl)
	ops := operations.NewHandler(logger, teams, mock_operations.NewMockEmergencies(ctrl), mock_operations.NewMockRenderer(ctrl))
	staffHandler := staff.NewHandler(logger, mock_staff.NewMockEmployees(ctrl))
	sys := system.NewHandler(logger, mock_system.NewMockStatsGetter(ctrl), map[string]system.Check{
		"postgres": func(context.Context) error { return nil },
	})

	cfg := &config.Config{
		APIKey: testKey,
		RateLimit: config.RateLimitConfig{
			ReadRPS:    100,
			ReadBurst:  100,
			WriteRPS:   0.001,
			WriteBurst: writeBurst,
			TTL:        time.Minute,
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return routerFixture{
		teams:  teams,
		router: InitRouter(ctx, cfg, ops, staffHandler, sys, logger),
	}
}

func TestRouter_WriteRequiresAPIKey(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, 10)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", strings.NewReader(`{"name":"Alpha","lat":1,"lng":2}`))
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestRouter_WriteWithAPIKey(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, 10)
	id := uuid.New()
	f.teams.EXPECT().
		Create(gomock.Any(), gomock.AssignableToTypeOf(domain.CreateTeamRequest{})).
		Return(id, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", strings.NewReader(`{"name":"Alpha","lat":1,"lng":2}`))
	req.Header.Set("X-API-Key", testKey)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), id.String()) {
		t.Fatalf("body %q does not carry the new id", rr.Body.String())
	}
}

func TestRouter_ReadsAreOpen(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, 10)
	f.teams.EXPECT().List(gomock.Any()).Return([]*domain.Team{}, nil)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("unexpected content type %q", rr.Header().Get("Content-Type"))
	}
}

func TestRouter_WriteRateLimited(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, 1)

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", strings.NewReader(`{`))
		req.Header.Set("X-API-Key", testKey)
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := send(); code != http.StatusBadRequest {
		t.Fatalf("first request: expected 400, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
}

func TestRouter_HealthAndUnknownRoute(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, 10)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/vehicles", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown route: expected 404, got %d", rr.Code)
	}
}
