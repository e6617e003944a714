package domain

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Color     string    `json:"color"`
	Members   int       `json:"members"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTeamRequest struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Lat     float64 `json:"lat" validate:"lat"`
	Lng     float64 `json:"lng" validate:"lng"`
	Color   string  `json:"color" validate:"omitempty,hexcolor"`
	Members int     `json:"members" validate:"min=0,max=500"`
}

type UpdateTeamRequest struct {
	Name    *string  `json:"name" validate:"omitempty,min=1,max=120"`
	Lat     *float64 `json:"lat" validate:"omitempty,lat"`
	Lng     *float64 `json:"lng" validate:"omitempty,lng"`
	Color   *string  `json:"color" validate:"omitempty,hexcolor"`
	Members *int     `json:"members" validate:"omitempty,min=0,max=500"`
}
