package dispatch

import (
	"errors"
	"fmt"
)

var ErrIncompleteRanking = errors.New("dispatch: ranking does not list every team exactly once")

// Target is an incident waiting for a team. ForcedTeamID, when set, pins the
// assignment regardless of distance.
type Target struct {
	ID           string   `json:"id"`
	Position     Point    `json:"position"`
	ForcedTeamID string   `json:"forced_team_id,omitempty"`
	Ranking      []Ranked `json:"ranking"`
}

func (t Target) Forced() bool { return t.ForcedTeamID != "" }

// Assignment maps target id to team id. A target is absent when its ranking
// was empty and it carried no forced team.
type Assignment map[string]string

// Assign computes the target -> team mapping in two passes.
//
// Forced choices are recorded first and reserve their team. The remaining
// targets are then served in input order: each takes the nearest team not yet
// reserved, or the nearest team overall once every team in its ranking is
// taken.
func Assign(targets []Target) Assignment {
	assignment := make(Assignment, len(targets))
	reserved := make(map[string]struct{}, len(targets))

	for _, t := range targets {
		if !t.Forced() {
			continue
		}
		assignment[t.ID] = t.ForcedTeamID
		reserved[t.ForcedTeamID] = struct{}{}
	}

	for _, t := range targets {
		if t.Forced() || len(t.Ranking) == 0 {
			continue
		}

		pick := t.Ranking[0].Team.ID
		for _, r := range t.Ranking {
			if _, taken := reserved[r.Team.ID]; !taken {
				pick = r.Team.ID
				break
			}
		}

		assignment[t.ID] = pick
		reserved[pick] = struct{}{}
	}

	return assignment
}

// Verify checks that every target's ranking lists each team exactly once.
func Verify(teams []Team, targets []Target) error {
	known := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		known[t.ID] = struct{}{}
	}

	for _, target := range targets {
		if len(target.Ranking) != len(known) {
			return fmt.Errorf("%w: target %s has %d entries, want %d",
				ErrIncompleteRanking, target.ID, len(target.Ranking), len(known))
		}
		seen := make(map[string]struct{}, len(target.Ranking))
		for _, r := range target.Ranking {
			if _, ok := known[r.Team.ID]; !ok {
				return fmt.Errorf("%w: target %s ranks unknown team %s", ErrIncompleteRanking, target.ID, r.Team.ID)
			}
			if _, dup := seen[r.Team.ID]; dup {
				return fmt.Errorf("%w: target %s ranks team %s twice", ErrIncompleteRanking, target.ID, r.Team.ID)
			}
			seen[r.Team.ID] = struct{}{}
		}
	}

	return nil
}

// AssignChecked verifies precomputed rankings before assigning.
func AssignChecked(teams []Team, targets []Target) (Assignment, error) {
	if err := Verify(teams, targets); err != nil {
		return nil, err
	}
	return Assign(targets), nil
}
