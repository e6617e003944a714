package domain

import (
	"time"

	"github.com/google/uuid"
)

type RankedTeam struct {
	TeamID     uuid.UUID `json:"team_id"`
	Name       string    `json:"name"`
	Color      string    `json:"color,omitempty"`
	DistanceKM float64   `json:"distance_km"`
}

// DispatchEntry is one open emergency on the dispatch board.
type DispatchEntry struct {
	Emergency           Emergency    `json:"emergency"`
	Forced              bool         `json:"forced"`
	SuggestedTeamID     *uuid.UUID   `json:"suggested_team_id,omitempty"`
	SuggestedTeamName   string       `json:"suggested_team_name,omitempty"`
	SuggestedDistanceKM *float64     `json:"suggested_distance_km,omitempty"`
	Ranking             []RankedTeam `json:"ranking"`
	Available           []RankedTeam `json:"available"`
}

type DispatchPlan struct {
	Entries     []DispatchEntry `json:"entries"`
	TeamCount   int             `json:"team_count"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// DispatchNotification is queued whenever an operator pins a team.
type DispatchNotification struct {
	EmergencyID uuid.UUID `json:"emergency_id"`
	Title       string    `json:"title"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	TeamID      uuid.UUID `json:"team_id"`
	TeamName    string    `json:"team_name"`
	DistanceKM  float64   `json:"distance_km"`
	AssignedAt  time.Time `json:"assigned_at"`
}
