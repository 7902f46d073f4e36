package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Shashankmy/crm/internal/middleware"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := setupTestService(t)
	h := NewHandler(svc)

	r := gin.New()
	r.Use(middleware.Identity("X-User-Name", "Shashank M Y"))
	api := r.Group("/api")
	RegisterRoutes(api, h)
	return r, svc
}

func doJSONRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestListEndpointShape(t *testing.T) {
	r, svc := setupTestRouter(t)
	seedPipeline(t, svc)

	rr := doJSONRequest(r, http.MethodGet, "/api/leads?page=1&limit=5&sortField=createdDate&sortDirection=desc", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Leads      []json.RawMessage `json:"leads"`
		Total      int64             `json:"total"`
		TotalPages int               `json:"totalPages"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid list response: %v", err)
	}
	if len(resp.Leads) != 5 || resp.Total != 10 || resp.TotalPages != 2 {
		t.Fatalf("unexpected list payload: leads=%d total=%d totalPages=%d",
			len(resp.Leads), resp.Total, resp.TotalPages)
	}
}

func TestListEmptyStoreReturnsEmptyArray(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodGet, "/api/leads", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !bytes.Contains([]byte(body), []byte(`"leads":[]`)) {
		t.Fatalf("expected empty leads array, got %s", body)
	}
	if !bytes.Contains([]byte(body), []byte(`"totalPages":0`)) {
		t.Fatalf("expected totalPages 0, got %s", body)
	}
}

func TestMeFilterUsesRequestIdentity(t *testing.T) {
	r, svc := setupTestRouter(t)
	seedPipeline(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/leads?owner=Me&limit=50", nil)
	req.Header.Set("X-User-Name", "Priya Sharma")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp ListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Total != 4 {
		t.Fatalf("expected 4 leads for Priya, got %d", resp.Total)
	}
	for _, l := range resp.Leads {
		if l.Owner != "Priya Sharma" {
			t.Fatalf("lead %q not owned by the request identity", l.Name)
		}
	}

	// no header falls back to the configured user
	rr = doJSONRequest(r, http.MethodGet, "/api/leads?owner=Me&limit=50", nil)
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Total != 6 {
		t.Fatalf("expected 6 leads for the fallback user, got %d", resp.Total)
	}
}

func TestGetUnknownLeadReturns404(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, path := range []string{"/api/leads/9999", "/api/leads/notanumber"} {
		rr := doJSONRequest(r, http.MethodGet, path, nil)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("GET %s: expected 404, got %d", path, rr.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if resp["message"] == "" {
			t.Fatalf("expected message field in error body")
		}
	}
}

func TestCreateEndpoint(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/api/leads", map[string]any{
		"name":   "Meera Nair",
		"email":  "meera.nair@example.com",
		"status": "New",
		"source": "Conference",
		"owner":  "Shashank M Y",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var created Lead
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid create response: %v", err)
	}
	if created.ID == 0 || created.LeadID == "" {
		t.Fatalf("server-assigned fields missing: %+v", created)
	}
}

func TestCreateValidation(t *testing.T) {
	r, _ := setupTestRouter(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"email": "a@b.com", "status": "New", "source": "Other", "owner": "x"}},
		{"bad email", map[string]any{"name": "a", "email": "nope", "status": "New", "source": "Other", "owner": "x"}},
		{"unknown status", map[string]any{"name": "a", "email": "a@b.com", "status": "Frozen", "source": "Other", "owner": "x"}},
		{"unknown source", map[string]any{"name": "a", "email": "a@b.com", "status": "New", "source": "Fax", "owner": "x"}},
	}
	for _, tc := range cases {
		rr := doJSONRequest(r, http.MethodPost, "/api/leads", tc.body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", tc.name, rr.Code, rr.Body.String())
		}
	}
}

func TestUpdateEndpointPartial(t *testing.T) {
	r, svc := setupTestRouter(t)
	seeded := seedPipeline(t, svc)
	target := seeded[0]

	rr := doJSONRequest(r, http.MethodPut, "/api/leads/"+itoa(target.ID), map[string]any{
		"status": "Contacted",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var updated Lead
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatalf("invalid update response: %v", err)
	}
	if updated.Status != StatusContacted || updated.Name != target.Name {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	rr = doJSONRequest(r, http.MethodPut, "/api/leads/424242", map[string]any{"status": "New"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", rr.Code)
	}
}

func TestBulkDeleteValidation(t *testing.T) {
	r, svc := setupTestRouter(t)
	seedPipeline(t, svc)

	for _, body := range []any{
		map[string]any{"ids": []int64{}},
		map[string]any{},
		nil,
	} {
		rr := doJSONRequest(r, http.MethodPost, "/api/leads/bulk-delete", body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", body, rr.Code)
		}
	}

	// nothing was deleted by the rejected requests
	res, err := svc.List(context.Background(), ListQuery{Limit: 50})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if res.Total != 10 {
		t.Fatalf("expected 10 leads untouched, got %d", res.Total)
	}
}

func TestBulkUpdateEndpoint(t *testing.T) {
	r, svc := setupTestRouter(t)
	seeded := seedPipeline(t, svc)

	rr := doJSONRequest(r, http.MethodPost, "/api/leads/bulk-update", map[string]any{
		"ids":     []int64{seeded[0].ID, seeded[1].ID},
		"updates": map[string]any{"status": "Qualified"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Count int64 `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid bulk-update response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("expected count 2, got %d", resp.Count)
	}

	rr = doJSONRequest(r, http.MethodPost, "/api/leads/bulk-update", map[string]any{
		"ids": []int64{seeded[0].ID},
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when updates object is missing, got %d", rr.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	r, svc := setupTestRouter(t)
	seedPipeline(t, svc)

	rr := doJSONRequest(r, http.MethodGet, "/api/stats", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var stats StatsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid stats response: %v", err)
	}
	if stats.TotalLeads != 10 || len(stats.RecentLeads) != 5 {
		t.Fatalf("unexpected stats: total=%d recent=%d", stats.TotalLeads, len(stats.RecentLeads))
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
