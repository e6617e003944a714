package operations

import (
	"log/slog"
	"net/http"
)

func (h *Handler) DispatchPlan(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	plan, err := h.Emergencies.Dispatch(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("dispatch plan built", slog.Int("entries", len(plan.Entries)), slog.Int("teams", plan.TeamCount))
	h.writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) DispatchBoard(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	plan, err := h.Emergencies.Dispatch(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Renderer.Render(w, http.StatusOK, "board.html", plan); err != nil {
		l.Error("board render failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
