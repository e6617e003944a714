package dispatch_test

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"fieldops/internal/dispatch"
)

func target(id string, lat, lng float64, forced string) dispatch.Target {
	return dispatch.Target{ID: id, Position: dispatch.Point{Lat: lat, Lng: lng}, ForcedTeamID: forced}
}

func mustPlan(t *testing.T, teams []dispatch.Team, targets []dispatch.Target) dispatch.Result {
	t.Helper()
	res, err := dispatch.Plan(teams, targets)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	return res
}

func TestPlan_NearestThenNextFree(t *testing.T) {
	t.Parallel()

	teams := []dispatch.Team{team("R1", 0, 0), team("R2", 10, 0)}
	res := mustPlan(t, teams, []dispatch.Target{
		target("T1", 1, 0, ""),
		target("T2", 2, 0, ""),
	})

	if got := ids(res.Targets[0].Ranking); !equalIDs(got, []string{"R1", "R2"}) {
		t.Fatalf("T1 ranking=%v", got)
	}
	if d := res.Targets[0].Ranking; d[0].DistanceKM != 111.2 || d[1].DistanceKM != 1000.8 {
		t.Fatalf("T1 distances=%v/%v", d[0].DistanceKM, d[1].DistanceKM)
	}
	if d := res.Targets[1].Ranking; d[0].DistanceKM != 222.4 || d[1].DistanceKM != 889.6 {
		t.Fatalf("T2 distances=%v/%v", d[0].DistanceKM, d[1].DistanceKM)
	}

	if res.Assignment["T1"] != "R1" {
		t.Fatalf("T1 expected R1 got %q", res.Assignment["T1"])
	}
	if res.Assignment["T2"] != "R2" {
		t.Fatalf("T2 expected R2 got %q", res.Assignment["T2"])
	}
}

func TestPlan_ForcedChoiceWins(t *testing.T) {
	t.Parallel()

	teams := []dispatch.Team{team("R1", 0, 0), team("R2", 10, 0)}
	res := mustPlan(t, teams, []dispatch.Target{
		target("T1", 1, 0, "R2"),
		target("T2", 2, 0, ""),
	})

	if res.Assignment["T1"] != "R2" {
		t.Fatalf("T1 expected forced R2 got %q", res.Assignment["T1"])
	}
	if res.Assignment["T2"] != "R1" {
		t.Fatalf("T2 expected R1 got %q", res.Assignment["T2"])
	}
}

func TestPlan_ScarcityFallsBackToNearest(t *testing.T) {
	t.Parallel()

	teams := []dispatch.Team{team("R1", 0, 0)}
	res := mustPlan(t, teams, []dispatch.Target{
		target("T1", 1, 0, ""),
		target("T2", 2, 0, ""),
	})

	if res.Assignment["T1"] != "R1" || res.Assignment["T2"] != "R1" {
		t.Fatalf("expected both on R1, got %v", res.Assignment)
	}
}

func TestPlan_NoTeams(t *testing.T) {
	t.Parallel()

	res := mustPlan(t, nil, []dispatch.Target{target("T1", 1, 1, "")})

	if len(res.Targets[0].Ranking) != 0 {
		t.Fatalf("expected empty ranking, got %v", res.Targets[0].Ranking)
	}
	if id, ok := res.Suggested("T1"); ok {
		t.Fatalf("expected no assignment, got %q", id)
	}
}

func TestPlan_NoTargets(t *testing.T) {
	t.Parallel()

	res := mustPlan(t, []dispatch.Team{team("R1", 0, 0)}, nil)
	if len(res.Assignment) != 0 || len(res.Targets) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestPlan_RejectsInvalidCoordinates(t *testing.T) {
	t.Parallel()

	_, err := dispatch.Plan([]dispatch.Team{team("R1", 95, 0)}, nil)
	if !errors.Is(err, dispatch.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates for team, got %v", err)
	}

	_, err = dispatch.Plan([]dispatch.Team{team("R1", 0, 0)}, []dispatch.Target{target("T1", 0, 200, "")})
	if !errors.Is(err, dispatch.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates for target, got %v", err)
	}
}

func TestAssign_AllForcedSameTeam(t *testing.T) {
	t.Parallel()

	teams := []dispatch.Team{team("R1", 0, 0), team("R2", 10, 0)}
	res := mustPlan(t, teams, []dispatch.Target{
		target("T1", 1, 0, "R2"),
		target("T2", 2, 0, "R2"),
		target("T3", 3, 0, "R2"),
	})

	for _, id := range []string{"T1", "T2", "T3"} {
		if res.Assignment[id] != "R2" {
			t.Fatalf("%s expected R2 got %q", id, res.Assignment[id])
		}
	}
}

func TestAssign_ForcedIDNotInRankingIsHonored(t *testing.T) {
	t.Parallel()

	got := dispatch.Assign([]dispatch.Target{{ID: "T1", ForcedTeamID: "ghost"}})
	if got["T1"] != "ghost" {
		t.Fatalf("expected forced id to be kept, got %q", got["T1"])
	}
}

func TestAssign_InputOrderDecidesContest(t *testing.T) {
	t.Parallel()

	teams := []dispatch.Team{team("R1", 0, 0), team("R2", 10, 0)}

	// T2 is closer to R1 but comes second, so T1 claims R1.
	res := mustPlan(t, teams, []dispatch.Target{
		target("T1", 2, 0, ""),
		target("T2", 1, 0, ""),
	})
	if res.Assignment["T1"] != "R1" || res.Assignment["T2"] != "R2" {
		t.Fatalf("unexpected assignment %v", res.Assignment)
	}
}

func TestAssign_Properties(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(99))

	for round := 0; round < 200; round++ {
		nTeams := rnd.Intn(6)
		nTargets := rnd.Intn(8)

		teams := make([]dispatch.Team, nTeams)
		for i := range teams {
			teams[i] = team("R"+strconv.Itoa(i), rnd.Float64()*40, rnd.Float64()*40)
		}

		targets := make([]dispatch.Target, nTargets)
		for i := range targets {
			forced := ""
			if nTeams > 0 && rnd.Intn(4) == 0 {
				forced = teams[rnd.Intn(nTeams)].ID
			}
			targets[i] = target("T"+strconv.Itoa(i), rnd.Float64()*40, rnd.Float64()*40, forced)
		}

		res := mustPlan(t, teams, targets)

		again := mustPlan(t, teams, targets)
		for id, teamID := range res.Assignment {
			if again.Assignment[id] != teamID {
				t.Fatalf("round %d: non-deterministic result for %s", round, id)
			}
		}

		reserved := make(map[string]bool)
		free := nTeams
		for _, tg := range targets {
			if tg.Forced() {
				if res.Assignment[tg.ID] != tg.ForcedTeamID {
					t.Fatalf("round %d: override ignored for %s", round, tg.ID)
				}
				if !reserved[tg.ForcedTeamID] {
					reserved[tg.ForcedTeamID] = true
					free--
				}
			}
		}

		autoSeen := make(map[string]string)
		for _, tg := range res.Targets {
			if tg.Forced() {
				continue
			}
			got, ok := res.Assignment[tg.ID]
			if nTeams == 0 {
				if ok {
					t.Fatalf("round %d: expected nil assignment without teams", round)
				}
				continue
			}
			if !ok {
				t.Fatalf("round %d: %s unassigned with %d teams", round, tg.ID, nTeams)
			}

			if free > 0 {
				if reserved[got] {
					t.Fatalf("round %d: %s took reserved team %s while %d were free", round, tg.ID, got, free)
				}
				if prev, dup := autoSeen[got]; dup {
					t.Fatalf("round %d: %s and %s share %s", round, prev, tg.ID, got)
				}
				free--
			} else if got != tg.Ranking[0].Team.ID {
				t.Fatalf("round %d: scarce %s expected nearest %s got %s", round, tg.ID, tg.Ranking[0].Team.ID, got)
			}
			autoSeen[got] = tg.ID
			reserved[got] = true
		}
	}
}

func TestResult_AvailableAndSuggested(t *testing.T) {
	t.Parallel()

	teams := []dispatch.Team{team("R1", 0, 0), team("R2", 10, 0), team("R3", 20, 0)}
	res := mustPlan(t, teams, []dispatch.Target{
		target("T1", 1, 0, ""),
		target("T2", 2, 0, ""),
	})

	if id, ok := res.Suggested("T2"); !ok || id != "R2" {
		t.Fatalf("Suggested(T2)=%q,%v", id, ok)
	}

	// R2 belongs to T2, so T1 sees R1 and R3.
	if got := ids(res.Available("T1")); !equalIDs(got, []string{"R1", "R3"}) {
		t.Fatalf("Available(T1)=%v", got)
	}
	if got := ids(res.Available("T2")); !equalIDs(got, []string{"R2", "R3"}) {
		t.Fatalf("Available(T2)=%v", got)
	}
	if got := res.Available("missing"); got != nil {
		t.Fatalf("expected nil for unknown target, got %v", got)
	}
}

func TestResult_Available_KeepsSharedSuggestion(t *testing.T) {
	t.Parallel()

	res := mustPlan(t, []dispatch.Team{team("R1", 0, 0)}, []dispatch.Target{
		target("T1", 1, 0, ""),
		target("T2", 2, 0, ""),
	})

	for _, id := range []string{"T1", "T2"} {
		if got, _ := res.Suggested(id); got != "R1" {
			t.Fatalf("Suggested(%s)=%q, want R1", id, got)
		}
		if got := ids(res.Available(id)); !equalIDs(got, []string{"R1"}) {
			t.Fatalf("Available(%s)=%v, want [R1]", id, got)
		}
	}
}

func TestResult_Available_KeepsOwnPinAmongShared(t *testing.T) {
	t.Parallel()

	// T1 pins R2; T2 and T3 fall back to R1 once R1 and R2 are taken.
	res := mustPlan(t, []dispatch.Team{team("R1", 0, 0), team("R2", 10, 0)}, []dispatch.Target{
		target("T1", 9, 0, "R2"),
		target("T2", 1, 0, ""),
		target("T3", 2, 0, ""),
	})

	if got := ids(res.Available("T1")); !equalIDs(got, []string{"R2"}) {
		t.Fatalf("Available(T1)=%v, want [R2]", got)
	}
	if got := ids(res.Available("T3")); !equalIDs(got, []string{"R1"}) {
		t.Fatalf("Available(T3)=%v, want [R1]", got)
	}
}

func TestVerify_RejectsIncompleteRankings(t *testing.T) {
	t.Parallel()

	teams := []dispatch.Team{team("R1", 0, 0), team("R2", 10, 0)}
	full := dispatch.Rank(teams, dispatch.Point{Lat: 1})

	cases := []struct {
		name    string
		ranking []dispatch.Ranked
	}{
		{"missing_team", full[:1]},
		{"duplicate_team", []dispatch.Ranked{full[0], full[0]}},
		{"unknown_team", []dispatch.Ranked{full[0], {Team: team("R9", 0, 0)}}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := dispatch.AssignChecked(teams, []dispatch.Target{{ID: "T1", Ranking: c.ranking}})
			if !errors.Is(err, dispatch.ErrIncompleteRanking) {
				t.Fatalf("expected ErrIncompleteRanking, got %v", err)
			}
		})
	}

	got, err := dispatch.AssignChecked(teams, []dispatch.Target{{ID: "T1", Ranking: full}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got["T1"] != "R1" {
		t.Fatalf("expected R1 got %q", got["T1"])
	}
}

func TestPlan_DuplicateTeamID(t *testing.T) {
	t.Parallel()

	teams := []dispatch.Team{team("R1", 0, 0), team("R1", 1, 1)}
	_, err := dispatch.Plan(teams, []dispatch.Target{target("T1", 0, 0, "")})
	if !errors.Is(err, dispatch.ErrIncompleteRanking) {
		t.Fatalf("expected ErrIncompleteRanking, got %v", err)
	}
}
