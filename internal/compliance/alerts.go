package compliance

import (
	"fmt"
	"time"
)

// DefaultWindow is how many days ahead an expiry starts raising a warning.
const DefaultWindow = 30

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool { return s.rank() > 0 }

type Alert struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Record holds the dates an employee's alerts are derived from. Nil means the
// date is not set.
type Record struct {
	ASOExpiry        *time.Time
	VacationDeadline *time.Time
	VacationStart    *time.Time
	VacationEnd      *time.Time
}

// NewRecord parses the four date fields, failing on the first malformed one.
func NewRecord(asoExpiry, vacationDeadline, vacationStart, vacationEnd string) (Record, error) {
	var (
		rec Record
		err error
	)
	if rec.ASOExpiry, err = ParseDate(asoExpiry); err != nil {
		return Record{}, fmt.Errorf("aso_expiry: %w", err)
	}
	if rec.VacationDeadline, err = ParseDate(vacationDeadline); err != nil {
		return Record{}, fmt.Errorf("vacation_deadline: %w", err)
	}
	if rec.VacationStart, err = ParseDate(vacationStart); err != nil {
		return Record{}, fmt.Errorf("vacation_start: %w", err)
	}
	if rec.VacationEnd, err = ParseDate(vacationEnd); err != nil {
		return Record{}, fmt.Errorf("vacation_end: %w", err)
	}
	return rec, nil
}

// Evaluator derives alerts with a configurable lookahead window in days.
type Evaluator struct {
	Window int
}

// Evaluate uses the default 30 day window.
func Evaluate(rec Record, today time.Time) []Alert {
	return Evaluator{Window: DefaultWindow}.Evaluate(rec, today)
}

// Evaluate returns the alerts for rec in fixed order: ASO, vacation deadline,
// active vacation. Each rule is independent of the others.
func (e Evaluator) Evaluate(rec Record, today time.Time) []Alert {
	today = Day(today)
	horizon := today.AddDate(0, 0, e.Window)

	alerts := make([]Alert, 0, 3)

	if rec.ASOExpiry != nil {
		exp := Day(*rec.ASOExpiry)
		switch {
		case exp.Before(today):
			alerts = append(alerts, Alert{SeverityError, "ASO expired on " + FormatDate(exp)})
		case !exp.After(horizon):
			alerts = append(alerts, Alert{SeverityWarning, "ASO expires on " + FormatDate(exp)})
		}
	}

	if rec.VacationDeadline != nil {
		dl := Day(*rec.VacationDeadline)
		switch {
		case dl.Before(today):
			alerts = append(alerts, Alert{SeverityError, "vacation deadline passed (" + FormatDate(dl) + ")"})
		case !dl.After(horizon):
			alerts = append(alerts, Alert{SeverityWarning, "vacation must be taken by " + FormatDate(dl)})
		}
	}

	if rec.VacationStart != nil && rec.VacationEnd != nil {
		start, end := Day(*rec.VacationStart), Day(*rec.VacationEnd)
		if !today.Before(start) && !today.After(end) {
			alerts = append(alerts, Alert{SeverityInfo, "on vacation until " + FormatDate(end)})
		}
	}

	return alerts
}

// Worst returns the most severe alert level, false when alerts is empty.
func Worst(alerts []Alert) (Severity, bool) {
	var worst Severity
	for _, a := range alerts {
		if a.Severity.rank() > worst.rank() {
			worst = a.Severity
		}
	}
	return worst, worst != ""
}

// Has reports whether any alert carries severity s.
func Has(alerts []Alert, s Severity) bool {
	for _, a := range alerts {
		if a.Severity == s {
			return true
		}
	}
	return false
}
