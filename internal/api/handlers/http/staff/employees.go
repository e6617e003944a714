package staff

import (
	"log/slog"
	"net/http"

	"fieldops/internal/api/handlers/http/presenter"
	"fieldops/internal/domain"
	"fieldops/internal/middleware"
)

func (h *Handler) EmployeeCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateEmployeeRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	id, err := h.Employees.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("employee created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) EmployeeList(w http.ResponseWriter, r *http.Request) {
	page, limit := presenter.Page(r)

	items, total, err := h.Employees.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if items == nil {
		items = []*domain.Employee{}
	}

	h.writeJSON(w, http.StatusOK, domain.ListEmployeesResponse{
		Employees: items,
		Page:      page,
		Limit:     limit,
		Total:     total,
	})
}

func (h *Handler) EmployeeGet(w http.ResponseWriter, r *http.Request) {
	id, err := presenter.ID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	emp, err := h.Employees.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, emp)
}

func (h *Handler) EmployeeUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := presenter.ID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req domain.UpdateEmployeeRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Employees.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("employee updated", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) EmployeeDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := presenter.ID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Employees.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("employee deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
