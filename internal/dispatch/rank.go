package dispatch

import "sort"

// Team is a dispatchable field unit as seen by the ranking code.
type Team struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position Point  `json:"position"`
}

// Ranked pairs a team with its distance to one target.
type Ranked struct {
	Team       Team    `json:"team"`
	DistanceKM float64 `json:"distance_km"`
}

// Rank orders every team by ascending distance to target. Teams at the same
// distance keep their input order.
func Rank(teams []Team, target Point) []Ranked {
	ranking := make([]Ranked, 0, len(teams))
	for _, t := range teams {
		ranking = append(ranking, Ranked{
			Team:       t,
			DistanceKM: Distance(t.Position, target),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].DistanceKM < ranking[j].DistanceKM
	})

	return ranking
}
