package operations_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"fieldops/internal/api/handlers/http/operations"
	mock_operations "fieldops/internal/api/handlers/http/operations/mocks"
	"fieldops/internal/domain"
	"fieldops/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

type fixture struct {
	teams       *mock_operations.MockTeams
	emergencies *mock_operations.MockEmergencies
	renderer    *mock_operations.MockRenderer
	h           *operations.Handler
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		teams:       mock_operations.NewMockTeams(ctrl),
		emergencies: mock_operations.NewMockEmergencies(ctrl),
		renderer:    mock_operations.NewMockRenderer(ctrl),
	}
	f.h = operations.NewHandler(newTestLogger(), f.teams, f.emergencies, f.renderer)
	return f
}

func TestTeamCreate_OK(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	wantID := uuid.New()
	f.teams.EXPECT().
		Create(gomock.Any(), domain.CreateTeamRequest{Name: "Alpha", Lat: -23.5, Lng: -46.6, Color: "#ff0000", Members: 4}).
		Return(wantID, nil).
		Times(1)

	body := `{"name":"Alpha","lat":-23.5,"lng":-46.6,"color":"#ff0000","members":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", strings.NewReader(body))
	rr := httptest.NewRecorder()

	f.h.TeamCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	if got := decodeJSON[map[string]string](t, rr); got["id"] != wantID.String() {
		t.Fatalf("expected id=%s got=%s", wantID, got["id"])
	}
}

func TestTeamCreate_Rejected_400(t *testing.T) {
	t.Parallel()

	bodies := map[string]string{
		"bad json":      `{bad json`,
		"missing name":  `{"lat":1,"lng":1}`,
		"latitude":      `{"name":"A","lat":95,"lng":1}`,
		"bad color":     `{"name":"A","lat":1,"lng":1,"color":"red"}`,
		"unknown field": `{"name":"A","lat":1,"lng":1,"radius":3}`,
	}
	for name, body := range bodies {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", strings.NewReader(body))
			rr := httptest.NewRecorder()
			f.h.TeamCreate(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d, body=%s", rr.Code, rr.Body.String())
			}
		})
	}
}

func TestTeamCreate_Conflict_409(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.teams.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, e.ErrConflict)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", strings.NewReader(`{"name":"Alpha","lat":1,"lng":1}`))
	rr := httptest.NewRecorder()
	f.h.TeamCreate(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rr.Code)
	}
}

func TestTeamList_EmptyIsArray(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.teams.EXPECT().List(gomock.Any()).Return(nil, nil)

	rr := httptest.NewRecorder()
	f.h.TeamList(rr, httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil))

	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"teams":[]`) {
		t.Fatalf("unexpected response %d %s", rr.Code, rr.Body.String())
	}
}

func TestTeamGet(t *testing.T) {
	t.Parallel()

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "nope")
		rr := httptest.NewRecorder()
		f.h.TeamGet(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rr.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		id := uuid.New()
		f.teams.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound)
		req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.String())
		rr := httptest.NewRecorder()
		f.h.TeamGet(rr, req)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404 got %d", rr.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		id := uuid.New()
		f.teams.EXPECT().Get(gomock.Any(), id).Return(&domain.Team{ID: id, Name: "Alpha"}, nil)
		req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.String())
		rr := httptest.NewRecorder()
		f.h.TeamGet(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rr.Code)
		}
		if got := decodeJSON[domain.Team](t, rr); got.ID != id || got.Name != "Alpha" {
			t.Fatalf("unexpected team %+v", got)
		}
	})
}

func TestTeamUpdateDelete_NoContent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	id := uuid.New()
	members := 7
	f.teams.EXPECT().Update(gomock.Any(), id, domain.UpdateTeamRequest{Members: &members}).Return(nil)
	f.teams.EXPECT().Delete(gomock.Any(), id).Return(nil)

	req := addChiURLParam(httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"members":7}`)), "id", id.String())
	rr := httptest.NewRecorder()
	f.h.TeamUpdate(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("update: expected 204 got %d, body=%s", rr.Code, rr.Body.String())
	}

	req = addChiURLParam(httptest.NewRequest(http.MethodDelete, "/", nil), "id", id.String())
	rr = httptest.NewRecorder()
	f.h.TeamDelete(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204 got %d", rr.Code)
	}
}

func TestEmergencyList_StatusFilter(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.emergencies.EXPECT().
			List(gomock.Any(), domain.ListEmergenciesRequest{Status: domain.EmergencyClosed, Page: 2, Limit: 10}).
			Return([]*domain.Emergency{{ID: uuid.New()}}, int64(11), nil)

		rr := httptest.NewRecorder()
		f.h.EmergencyList(rr, httptest.NewRequest(http.MethodGet, "/?status=closed&page=2&limit=10", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rr.Code)
		}
		got := decodeJSON[map[string]any](t, rr)
		if got["total"].(float64) != 11 || got["page"].(float64) != 2 {
			t.Fatalf("unexpected page info %v", got)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		rr := httptest.NewRecorder()
		f.h.EmergencyList(rr, httptest.NewRequest(http.MethodGet, "/?status=pending", nil))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rr.Code)
		}
	})
}

func TestEmergencyCreate_InvalidCoordinates_400(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.emergencies.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, e.ErrInvalidCoordinates)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x","lat":1,"lng":1}`))
	rr := httptest.NewRecorder()
	f.h.EmergencyCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if got := decodeJSON[map[string]string](t, rr); got["error"] != "invalid coordinates" {
		t.Fatalf("unexpected error body %v", got)
	}
}

func TestEmergencySelectTeam(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	teamID := uuid.New()

	tests := []struct {
		name     string
		body     string
		wantTeam *uuid.UUID
		svcErr   error
		want     int
	}{
		{"pin", `{"team_id":"` + teamID.String() + `"}`, &teamID, nil, http.StatusNoContent},
		{"clear", `{"team_id":null}`, nil, nil, http.StatusNoContent},
		{"closed", `{"team_id":"` + teamID.String() + `"}`, &teamID, e.ErrConflict, http.StatusConflict},
		{"unknown team", `{"team_id":"` + teamID.String() + `"}`, &teamID, e.ErrInvalidInput, http.StatusBadRequest},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			f.emergencies.EXPECT().SelectTeam(gomock.Any(), id, tt.wantTeam).Return(tt.svcErr)

			req := addChiURLParam(httptest.NewRequest(http.MethodPut, "/", strings.NewReader(tt.body)), "id", id.String())
			rr := httptest.NewRecorder()
			f.h.EmergencySelectTeam(rr, req)
			if rr.Code != tt.want {
				t.Fatalf("expected %d got %d, body=%s", tt.want, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestEmergencyClose(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	id := uuid.New()
	f.emergencies.EXPECT().Close(gomock.Any(), id).Return(nil)

	req := addChiURLParam(httptest.NewRequest(http.MethodPost, "/", nil), "id", id.String())
	rr := httptest.NewRecorder()
	f.h.EmergencyClose(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}
}

func TestDispatchPlan_OK(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	teamID := uuid.New()
	plan := &domain.DispatchPlan{
		TeamCount: 1,
		Entries: []domain.DispatchEntry{{
			Emergency:       domain.Emergency{ID: uuid.New(), Title: "Pole down"},
			SuggestedTeamID: &teamID,
			Ranking:         []domain.RankedTeam{{TeamID: teamID, DistanceKM: 3.2}},
			Available:       []domain.RankedTeam{{TeamID: teamID, DistanceKM: 3.2}},
		}},
	}
	f.emergencies.EXPECT().Dispatch(gomock.Any()).Return(plan, nil)

	rr := httptest.NewRecorder()
	f.h.DispatchPlan(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dispatch", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	got := decodeJSON[domain.DispatchPlan](t, rr)
	if len(got.Entries) != 1 || *got.Entries[0].SuggestedTeamID != teamID {
		t.Fatalf("unexpected plan %+v", got)
	}
}

func TestDispatchPlan_Error_500(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.emergencies.EXPECT().Dispatch(gomock.Any()).Return(nil, errors.New("boom"))

	rr := httptest.NewRecorder()
	f.h.DispatchPlan(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dispatch", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("internal error text leaked: %s", rr.Body.String())
	}
}

func TestDispatchBoard(t *testing.T) {
	t.Parallel()

	t.Run("renders", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		plan := &domain.DispatchPlan{}
		f.emergencies.EXPECT().Dispatch(gomock.Any()).Return(plan, nil)
		f.renderer.EXPECT().Render(gomock.Any(), http.StatusOK, "board.html", plan).DoAndReturn(
			func(w http.ResponseWriter, status int, _ string, _ any) error {
				w.WriteHeader(status)
				_, err := io.WriteString(w, "<html>board</html>")
				return err
			})

		rr := httptest.NewRecorder()
		f.h.DispatchBoard(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dispatch/board", nil))
		if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "board") {
			t.Fatalf("unexpected response %d %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("render failure", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.emergencies.EXPECT().Dispatch(gomock.Any()).Return(&domain.DispatchPlan{}, nil)
		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("template"))

		rr := httptest.NewRecorder()
		f.h.DispatchBoard(rr, httptest.NewRequest(http.MethodGet, "/api/v1/dispatch/board", nil))
		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 got %d", rr.Code)
		}
	})
}
