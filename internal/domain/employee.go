package domain

import (
	"time"

	"github.com/google/uuid"
)

// Employee dates are calendar dates in YYYY-MM-DD form; nil means unset.
type Employee struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	TeamID           *uuid.UUID `json:"team_id,omitempty"`
	ASOExpiry        *string    `json:"aso_expiry,omitempty"`
	VacationDeadline *string    `json:"vacation_deadline,omitempty"`
	VacationStart    *string    `json:"vacation_start,omitempty"`
	VacationEnd      *string    `json:"vacation_end,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type CreateEmployeeRequest struct {
	Name             string     `json:"name" validate:"required,max=160"`
	TeamID           *uuid.UUID `json:"team_id"`
	ASOExpiry        *string    `json:"aso_expiry" validate:"omitempty,isodate"`
	VacationDeadline *string    `json:"vacation_deadline" validate:"omitempty,isodate"`
	VacationStart    *string    `json:"vacation_start" validate:"omitempty,isodate"`
	VacationEnd      *string    `json:"vacation_end" validate:"omitempty,isodate"`
}

// UpdateEmployeeRequest uses PATCH semantics. An empty date or team_id
// string clears the stored value.
type UpdateEmployeeRequest struct {
	Name             *string    `json:"name" validate:"omitempty,min=1,max=160"`
	TeamID           *string    `json:"team_id" validate:"omitempty,uuid"`
	ASOExpiry        *string    `json:"aso_expiry" validate:"omitempty,isodate"`
	VacationDeadline *string    `json:"vacation_deadline" validate:"omitempty,isodate"`
	VacationStart    *string    `json:"vacation_start" validate:"omitempty,isodate"`
	VacationEnd      *string    `json:"vacation_end" validate:"omitempty,isodate"`
}

type Alert struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type EmployeeAlerts struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Name       string    `json:"name"`
	Worst      string    `json:"worst,omitempty"`
	Alerts     []Alert   `json:"alerts"`
}

type ListEmployeesResponse struct {
	Employees []*Employee `json:"employees"`
	Page      int         `json:"page"`
	Limit     int         `json:"limit"`
	Total     int64       `json:"total"`
}
