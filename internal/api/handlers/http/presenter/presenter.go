package presenter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fieldops/internal/compliance"
	"fieldops/pkg/e"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Status maps a service error onto an HTTP status and a public message.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, e.ErrInvalidCoordinates):
		return http.StatusBadRequest, "invalid coordinates"
	case errors.Is(err, e.ErrInvalidDate):
		return http.StatusBadRequest, "invalid date"
	case errors.Is(err, e.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation):
		return http.StatusConflict, "conflict"
	case errors.Is(err, e.ErrDeadline):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// Error logs err and writes the mapped JSON error. Client errors carry the
// error text as details; server errors never do.
func Error(l *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	code, msg := Status(err)

	attrs := []any{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", code),
		slog.Any("error", err),
	}
	if code >= http.StatusInternalServerError {
		l.Error("handler error", attrs...)
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	l.Warn("request rejected", attrs...)
	JSON(w, code, map[string]string{"error": msg, "details": err.Error()})
}

func JSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func ParseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// Page reads page and limit query params, capping limit at 100.
func Page(r *http.Request) (int, int) {
	page := ParseInt(r.URL.Query().Get("page"), 1)
	limit := ParseInt(r.URL.Query().Get("limit"), 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// ID parses the {id} URL param.
func ID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id %q", e.ErrInvalidInput, raw)
	}
	return id, nil
}

// Today reads the optional ?today=YYYY-MM-DD override. Absent or blank means now.
func Today(r *http.Request, now time.Time) (time.Time, error) {
	d, err := compliance.ParseDate(r.URL.Query().Get("today"))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: today: %w", e.ErrInvalidDate, err)
	}
	if d == nil {
		return compliance.Day(now), nil
	}
	return *d, nil
}
