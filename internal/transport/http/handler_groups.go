package httptransport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"table-planner/internal/app/planner"
)

type GroupHandlers struct {
	svc *planner.Service
}

func NewGroupHandlers(svc *planner.Service) *GroupHandlers {
	return &GroupHandlers{svc: svc}
}

func (h *GroupHandlers) Add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req planner.AddGroupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.svc.AddGroup(req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *GroupHandlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.Groups(r.URL.Query().Get("status"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *GroupHandlers) Seat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, ok := groupIDParam(w, r)
		if !ok {
			return
		}
		var req planner.SeatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.svc.Seat(groupID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *GroupHandlers) Release() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, ok := groupIDParam(w, r)
		if !ok {
			return
		}
		if err := h.svc.Release(groupID); err != nil {
			writeServiceError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

func (h *GroupHandlers) Rename() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, ok := groupIDParam(w, r)
		if !ok {
			return
		}
		var req planner.RenameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		if err := h.svc.Rename(groupID, req); err != nil {
			writeServiceError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

func (h *GroupHandlers) Optimize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(h.svc.Optimize())
	}
}

func groupIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "group_id"))
	if err != nil || id < 1 {
		WriteHTTPError(w, http.StatusBadRequest, "invalid_group_id")
		return 0, false
	}
	return id, true
}
