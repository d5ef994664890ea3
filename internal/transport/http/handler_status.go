package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"table-planner/internal/app/planner"
	"table-planner/internal/floor"
)

type StatusHandlers struct {
	svc *planner.Service
}

func NewStatusHandlers(svc *planner.Service) *StatusHandlers {
	return &StatusHandlers{svc: svc}
}

func (h *StatusHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

func (h *StatusHandlers) Utilization() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(h.svc.Utilization())
	}
}

func (h *StatusHandlers) Rooms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(h.svc.Rooms())
	}
}

func (h *StatusHandlers) Journal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := ParseLimit(r, 20, 500)
		_ = json.NewEncoder(w).Encode(h.svc.Journal(limit))
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, planner.ErrInvalidRequest):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
	case errors.Is(err, floor.ErrInvalidTableID):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_table_id")
	case errors.Is(err, floor.ErrTableNotFound):
		WriteHTTPError(w, http.StatusNotFound, "table_not_found")
	case errors.Is(err, floor.ErrGroupNotFound):
		WriteHTTPError(w, http.StatusNotFound, "group_not_found")
	case errors.Is(err, floor.ErrDuplicateTable):
		WriteHTTPError(w, http.StatusConflict, "duplicate_table")
	case errors.Is(err, floor.ErrGroupTooLarge):
		WriteHTTPError(w, http.StatusConflict, "group_too_large")
	case errors.Is(err, floor.ErrInsufficientSpace):
		WriteHTTPError(w, http.StatusConflict, "insufficient_space")
	case errors.Is(err, floor.ErrNoTableAvailable):
		WriteHTTPError(w, http.StatusConflict, "no_table_available")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
