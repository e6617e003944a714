package operations

import (
	"net/http"

	"fieldops/internal/api/handlers/http/presenter"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	presenter.Error(h.log(r), w, r, err)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	presenter.JSON(w, code, v)
}
