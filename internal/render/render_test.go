package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"fieldops/internal/domain"
)

func TestRender_Board(t *testing.T) {
	t.Parallel()

	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	teamID := uuid.New()
	dist := 11.1
	plan := domain.DispatchPlan{
		TeamCount:   1,
		GeneratedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		Entries: []domain.DispatchEntry{{
			Emergency:           domain.Emergency{Title: "Pole <down>", Lat: 1, Lng: 2},
			Forced:              true,
			SuggestedTeamID:     &teamID,
			SuggestedTeamName:   "Alpha",
			SuggestedDistanceKM: &dist,
			Available:           []domain.RankedTeam{{TeamID: teamID, Name: "Alpha", Color: "#ff0000", DistanceKM: 11.1}},
		}},
	}

	rr := httptest.NewRecorder()
	if err := r.Render(rr, http.StatusOK, "board.html", plan); err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := rr.Body.String()
	for _, want := range []string{"Pole &lt;down&gt;", "Alpha", "pinned", "11.1 km", "2025-03-10 12:00 UTC"} {
		if !strings.Contains(body, want) {
			t.Errorf("board missing %q", want)
		}
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestRender_EmptyBoard(t *testing.T) {
	t.Parallel()

	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rr := httptest.NewRecorder()
	if err := r.Render(rr, http.StatusOK, "board.html", domain.DispatchPlan{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(rr.Body.String(), "No open emergencies.") {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	t.Parallel()

	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rr := httptest.NewRecorder()
	if err := r.Render(rr, http.StatusOK, "missing.html", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
	if rr.Body.Len() != 0 {
		t.Fatal("nothing should be written on error")
	}
}
