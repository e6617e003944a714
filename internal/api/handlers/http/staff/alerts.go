package staff

import (
	"net/http"

	"fieldops/internal/api/handlers/http/presenter"
	"fieldops/internal/compliance"
	"fieldops/internal/domain"
)

func (h *Handler) EmployeeAlerts(w http.ResponseWriter, r *http.Request) {
	id, err := presenter.ID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	today, err := presenter.Today(r, h.now())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	alerts, err := h.Employees.Alerts(r.Context(), id, today)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, alerts)
}

// AlertList returns every employee with at least one alert, optionally only
// those with an alert of ?severity=error|warning|info.
func (h *Handler) AlertList(w http.ResponseWriter, r *http.Request) {
	today, err := presenter.Today(r, h.now())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	severity := r.URL.Query().Get("severity")

	items, err := h.Employees.AlertsAll(r.Context(), today, severity)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.EmployeeAlerts{}
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"today":     compliance.FormatDate(today),
		"severity":  severity,
		"employees": items,
		"total":     len(items),
	})
}
