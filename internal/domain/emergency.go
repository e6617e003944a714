package domain

import (
	"time"

	"github.com/google/uuid"
)

type EmergencyStatus string

const (
	EmergencyOpen   EmergencyStatus = "open"
	EmergencyClosed EmergencyStatus = "closed"
)

// Emergency is an incident waiting for (or served by) a field team.
// SelectedTeamID is the operator's manual pick and overrides the suggestion.
type Emergency struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Lat            float64         `json:"lat"`
	Lng            float64         `json:"lng"`
	Status         EmergencyStatus `json:"status"`
	SelectedTeamID *uuid.UUID      `json:"selected_team_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type CreateEmergencyRequest struct {
	Title string  `json:"title" validate:"required,max=200"`
	Lat   float64 `json:"lat" validate:"lat"`
	Lng   float64 `json:"lng" validate:"lng"`
}

type UpdateEmergencyRequest struct {
	Title *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Lat   *float64 `json:"lat" validate:"omitempty,lat"`
	Lng   *float64 `json:"lng" validate:"omitempty,lng"`
}

// SelectTeamRequest pins a team on an emergency; a null team_id clears the pin.
type SelectTeamRequest struct {
	TeamID *uuid.UUID `json:"team_id"`
}

type ListEmergenciesRequest struct {
	Status EmergencyStatus `validate:"omitempty,oneof=open closed"`
	Page   int             `validate:"min=1"`
	Limit  int             `validate:"min=1,max=100"`
}
