package operations

import (
	"log/slog"
	"net/http"

	"fieldops/internal/api/handlers/http/presenter"
	"fieldops/internal/domain"
	"fieldops/internal/middleware"
)

func (h *Handler) TeamCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateTeamRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	id, err := h.Teams.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("team created", slog.String("id", id.String()), slog.String("name", req.Name))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) TeamList(w http.ResponseWriter, r *http.Request) {
	teams, err := h.Teams.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if teams == nil {
		teams = []*domain.Team{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"teams": teams, "total": len(teams)})
}

func (h *Handler) TeamGet(w http.ResponseWriter, r *http.Request) {
	id, err := presenter.ID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.Teams.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, team)
}

func (h *Handler) TeamUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := presenter.ID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req domain.UpdateTeamRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Teams.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("team updated", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) TeamDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := presenter.ID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Teams.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("team deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
