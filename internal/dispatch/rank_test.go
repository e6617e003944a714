package dispatch_test

import (
	"math/rand"
	"testing"

	"fieldops/internal/dispatch"
)

func team(id string, lat, lng float64) dispatch.Team {
	return dispatch.Team{ID: id, Name: "team " + id, Position: dispatch.Point{Lat: lat, Lng: lng}}
}

func ids(ranking []dispatch.Ranked) []string {
	out := make([]string, len(ranking))
	for i, r := range ranking {
		out[i] = r.Team.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRank_OrdersByDistance(t *testing.T) {
	t.Parallel()

	teams := []dispatch.Team{team("far", 10, 0), team("near", 0, 0), team("mid", 5, 0)}

	got := dispatch.Rank(teams, dispatch.Point{Lat: 1})

	if want := []string{"near", "mid", "far"}; !equalIDs(ids(got), want) {
		t.Fatalf("order mismatch: got=%v want=%v", ids(got), want)
	}
	if got[0].DistanceKM != 111.2 {
		t.Fatalf("expected 111.2 km to nearest, got %v", got[0].DistanceKM)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	// east and west of the target at the same distance
	teams := []dispatch.Team{team("b", 0, 1), team("a", 0, -1), team("c", 0, 1)}

	got := dispatch.Rank(teams, dispatch.Point{})

	if want := []string{"b", "a", "c"}; !equalIDs(ids(got), want) {
		t.Fatalf("stable order broken: got=%v want=%v", ids(got), want)
	}
}

func TestRank_Empty(t *testing.T) {
	t.Parallel()

	got := dispatch.Rank(nil, dispatch.Point{Lat: 1, Lng: 1})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil ranking, got %#v", got)
	}
}

func TestRank_CompleteAndSorted(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(7))
	teams := make([]dispatch.Team, 40)
	for i := range teams {
		teams[i] = team(string(rune('A'+i)), rnd.Float64()*120-60, rnd.Float64()*300-150)
	}

	for i := 0; i < 50; i++ {
		target := dispatch.Point{Lat: rnd.Float64()*180 - 90, Lng: rnd.Float64()*360 - 180}
		got := dispatch.Rank(teams, target)

		if len(got) != len(teams) {
			t.Fatalf("expected %d entries, got %d", len(teams), len(got))
		}
		seen := make(map[string]bool, len(got))
		for j, r := range got {
			if seen[r.Team.ID] {
				t.Fatalf("team %s listed twice", r.Team.ID)
			}
			seen[r.Team.ID] = true
			if j > 0 && got[j-1].DistanceKM > r.DistanceKM {
				t.Fatalf("not ascending at %d: %v > %v", j, got[j-1].DistanceKM, r.DistanceKM)
			}
		}
		if err := dispatch.Verify(teams, []dispatch.Target{{ID: "t", Ranking: got}}); err != nil {
			t.Fatalf("Verify: %v", err)
		}
	}
}
