package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"table-planner/internal/app/planner"
)

type TableHandlers struct {
	svc *planner.Service
}

func NewTableHandlers(svc *planner.Service) *TableHandlers {
	return &TableHandlers{svc: svc}
}

func (h *TableHandlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(h.svc.Tables())
	}
}

func (h *TableHandlers) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := h.svc.Table(chi.URLParam(r, "table_id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(st)
	}
}

func (h *TableHandlers) Add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req planner.AddTableRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		st, err := h.svc.AddTable(req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(st)
	}
}

func (h *TableHandlers) Remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.svc.RemoveTable(chi.URLParam(r, "table_id")); err != nil {
			writeServiceError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
