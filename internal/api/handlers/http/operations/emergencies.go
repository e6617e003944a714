package operations

import (
	"log/slog"
	"net/http"

	"fieldops/internal/api/handlers/http/presenter"
	"fieldops/internal/domain"
	"fieldops/internal/middleware"
)

func (h *Handler) EmergencyCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateEmergencyRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	id, err := h.Emergencies.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("emergency created",
		slog.String("id", id.String()),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) EmergencyList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("EmergencyList", slog.String("query", r.URL.RawQuery))

	page, limit := presenter.Page(r)
	req := domain.ListEmergenciesRequest{
		Status: domain.EmergencyStatus(r.URL.Query().Get("status")),
		Page:   page,
		Limit:  limit,
	}
	if err := middleware.Validate(req); err != nil {
		h.handleError(w, r, err)
		return
	}

	items, total, err := h.Emergencies.List(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if items == nil {
		items = []*domain.Emergency{}
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"emergencies": items,
		"total":       total,
		"page":        page,
		"limit":       limit,
	})
}

func (h *Handler) EmergencyGet(w http.ResponseWriter, r *http.Request) {
	id, err := presenter.ID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	em, err := h.Emergencies.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, em)
}

func (h *Handler) EmergencyUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := presenter.ID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req domain.UpdateEmergencyRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Emergencies.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("emergency updated", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) EmergencyDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := presenter.ID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Emergencies.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("emergency deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// EmergencySelectTeam pins a team ({"team_id": "..."}) or clears the pin
// ({"team_id": null}).
func (h *Handler) EmergencySelectTeam(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := presenter.ID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req domain.SelectTeamRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Emergencies.SelectTeam(r.Context(), id, req.TeamID); err != nil {
		h.handleError(w, r, err)
		return
	}

	if req.TeamID == nil {
		l.Info("team selection cleared", slog.String("emergency_id", id.String()))
	} else {
		l.Info("team selected", slog.String("emergency_id", id.String()), slog.String("team_id", req.TeamID.String()))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) EmergencyClose(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := presenter.ID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Emergencies.Close(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("emergency closed", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
