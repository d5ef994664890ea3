package httptransport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"table-planner/internal/app/planner"
	"table-planner/internal/config"
	"table-planner/internal/floor"
	"table-planner/internal/journal"
)

func newTestRouter(t *testing.T, cfg config.ServerConfig) http.Handler {
	t.Helper()
	plan := floor.NewPlan([]floor.RoomDef{
		{Name: "GREENROOM", Tables: []string{"T1", "T2"}},
	})
	if err := plan.AddTable("T1", 2, "GREENROOM"); err != nil {
		t.Fatal(err)
	}
	if err := plan.AddTable("T2", 4, "GREENROOM"); err != nil {
		t.Fatal(err)
	}
	svc := planner.NewService(plan, journal.New(16))
	return NewRouter(svc, cfg)
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(t, config.ServerConfig{})
	rec := doJSON(t, h, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGroupSeatFlow(t *testing.T) {
	h := newTestRouter(t, config.ServerConfig{})

	rec := doJSON(t, h, http.MethodPost, "/api/groups", `{"size":3,"name":"Birthday"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add group status = %d, body %s", rec.Code, rec.Body.String())
	}
	var added planner.AddGroupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &added); err != nil {
		t.Fatal(err)
	}
	if added.GroupID != 1 || added.Name != "Birthday" {
		t.Fatalf("added = %+v", added)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/groups/1/seat", `{"table_id":"T2"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("seat status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/api/tables/T2", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get table status = %d", rec.Code)
	}
	var st floor.TableStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatal(err)
	}
	if !st.Occupied || st.Occupancy != 3 || st.UtilizationPct != 75.0 {
		t.Fatalf("table status = %+v", st)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/groups/1/release", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("release status = %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodPost, "/api/groups/1/release", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second release status = %d, want 404", rec.Code)
	}
}

func TestErrorMapping(t *testing.T) {
	h := newTestRouter(t, config.ServerConfig{})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"bad group payload", http.MethodPost, "/api/groups", `{"size":0}`, http.StatusBadRequest, "invalid_request"},
		{"bad group id", http.MethodPost, "/api/groups/zero/seat", `{"table_id":"T1"}`, http.StatusBadRequest, "invalid_group_id"},
		{"unknown group", http.MethodPost, "/api/groups/42/seat", `{"table_id":"T1"}`, http.StatusNotFound, "group_not_found"},
		{"unknown table status", http.MethodGet, "/api/tables/NOPE", "", http.StatusNotFound, "table_not_found"},
		{"bad status filter", http.MethodGet, "/api/groups?status=bogus", "", http.StatusBadRequest, "invalid_request"},
	}
	for _, tt := range tests {
		rec := doJSON(t, h, tt.method, tt.path, tt.body, nil)
		if rec.Code != tt.wantStatus {
			t.Fatalf("%s: status = %d, want %d", tt.name, rec.Code, tt.wantStatus)
		}
		var payload map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("%s: body = %q", tt.name, rec.Body.String())
		}
		if payload["error"] != tt.wantError {
			t.Fatalf("%s: error = %v, want %q", tt.name, payload["error"], tt.wantError)
		}
	}
}

func TestSeatConflictCodes(t *testing.T) {
	h := newTestRouter(t, config.ServerConfig{})

	doJSON(t, h, http.MethodPost, "/api/groups", `{"size":5}`, nil)
	rec := doJSON(t, h, http.MethodPost, "/api/groups/1/seat", `{"table_id":"T2"}`, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("too-large status = %d, want 409", rec.Code)
	}

	doJSON(t, h, http.MethodPost, "/api/groups", `{"size":4}`, nil)
	doJSON(t, h, http.MethodPost, "/api/groups", `{"size":2}`, nil)
	if rec := doJSON(t, h, http.MethodPost, "/api/groups/2/seat", `{"table_id":"T2"}`, nil); rec.Code != http.StatusOK {
		t.Fatalf("seat status = %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodPost, "/api/groups/3/seat", `{"table_id":"T2"}`, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("full-table status = %d, want 409", rec.Code)
	}
}

func TestAdminGuardOnTableRoutes(t *testing.T) {
	h := newTestRouter(t, config.ServerConfig{AdminAPIKey: "secret"})
	body := `{"id":"T9","capacity":4,"room":"GREENROOM"}`

	rec := doJSON(t, h, http.MethodPost, "/api/tables", body, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated add status = %d, want 401", rec.Code)
	}
	rec = doJSON(t, h, http.MethodPost, "/api/tables", body, map[string]string{"X-Admin-Key": "secret"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("authenticated add status = %d, body %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, h, http.MethodDelete, "/api/tables/T9", "", map[string]string{"Authorization": "Bearer secret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated delete status = %d", rec.Code)
	}
}

func TestAdminRoutesOpenWithoutKey(t *testing.T) {
	h := newTestRouter(t, config.ServerConfig{})
	rec := doJSON(t, h, http.MethodPost, "/api/tables", `{"id":"T9","capacity":4,"room":"GREENROOM"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("open add status = %d, body %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, h, http.MethodPost, "/api/tables", `{"id":"T9","capacity":4,"room":"GREENROOM"}`, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate add status = %d, want 409", rec.Code)
	}
}

func TestOptimizeEndpoint(t *testing.T) {
	h := newTestRouter(t, config.ServerConfig{})
	doJSON(t, h, http.MethodPost, "/api/groups", `{"size":4}`, nil)
	doJSON(t, h, http.MethodPost, "/api/groups", `{"size":2}`, nil)

	rec := doJSON(t, h, http.MethodPost, "/api/seating/optimize", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("optimize status = %d", rec.Code)
	}
	var resp planner.OptimizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Placements) != 2 {
		t.Fatalf("placements = %+v", resp.Placements)
	}
	if resp.Placements[0].TableID != "T2" || resp.Placements[1].TableID != "T1" {
		t.Fatalf("placements = %+v", resp.Placements)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/journal?limit=5", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("journal status = %d", rec.Code)
	}
	var jr planner.JournalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &jr); err != nil {
		t.Fatal(err)
	}
	if len(jr.Items) == 0 {
		t.Fatal("journal empty after activity")
	}
}
