package dispatch

import "fmt"

// Result is one dispatch computation: the ranked targets in input order and
// the assignment derived from them.
type Result struct {
	Targets    []Target
	Assignment Assignment
}

// Plan validates positions, ranks every target against teams, checks the
// rankings are complete and assigns. Duplicate team ids fail the check.
// Rankings already present on targets are replaced.
func Plan(teams []Team, targets []Target) (Result, error) {
	for _, t := range teams {
		if err := t.Position.Validate(); err != nil {
			return Result{}, fmt.Errorf("team %s: %w", t.ID, err)
		}
	}

	ranked := make([]Target, len(targets))
	for i, t := range targets {
		if err := t.Position.Validate(); err != nil {
			return Result{}, fmt.Errorf("target %s: %w", t.ID, err)
		}
		t.Ranking = Rank(teams, t.Position)
		ranked[i] = t
	}
	assignment, err := AssignChecked(teams, ranked)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Targets:    ranked,
		Assignment: assignment,
	}, nil
}

// Suggested returns the team assigned to targetID.
func (r Result) Suggested(targetID string) (string, bool) {
	id, ok := r.Assignment[targetID]
	return id, ok
}

// Available returns the ranking of targetID without the teams assigned to
// any other target. The target's own suggestion always stays listed, even
// when scarcity handed the same team to another target too. Unknown targets
// yield nil.
func (r Result) Available(targetID string) []Ranked {
	var target *Target
	for i := range r.Targets {
		if r.Targets[i].ID == targetID {
			target = &r.Targets[i]
			break
		}
	}
	if target == nil {
		return nil
	}

	own := r.Assignment[targetID]
	claimed := make(map[string]struct{}, len(r.Assignment))
	for id, teamID := range r.Assignment {
		if id != targetID && teamID != own {
			claimed[teamID] = struct{}{}
		}
	}

	out := make([]Ranked, 0, len(target.Ranking))
	for _, rk := range target.Ranking {
		if _, ok := claimed[rk.Team.ID]; !ok {
			out = append(out, rk)
		}
	}
	return out
}
