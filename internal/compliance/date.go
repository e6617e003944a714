package compliance

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("compliance: invalid date")

// ParseDate parses a calendar date. Blank input means "not set" and returns
// nil. Full RFC 3339 timestamps are accepted and cut to their calendar day.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if d, err := time.Parse(DateLayout, s); err == nil {
		return &d, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		d := Day(ts)
		return &d, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Day drops the time of day, keeping the calendar date t has in its own zone.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a date the way alerts and the API show it.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
