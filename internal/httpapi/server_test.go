package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"tenguard.watch/trends/internal/article"
	"tenguard.watch/trends/internal/globaltime"
	"tenguard.watch/trends/internal/runstatus"
	"tenguard.watch/trends/internal/trends"
)

func newTestServer(t *testing.T) (*Server, string, string) {
	t.Helper()
	dir := t.TempDir()
	statsDir := filepath.Join(dir, "stats")
	statusFile := filepath.Join(dir, "update_info.json")
	server := NewServer(statsDir, statusFile, zerolog.Nop(), Options{})
	return server, statsDir, statusFile
}

func doRequest(t *testing.T, s *Server, path string) (*httptest.ResponseRecorder, jsendResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.buildEcho().ServeHTTP(rec, req)

	var body jsendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response for %s: %v\n%s", path, err, rec.Body.String())
	}
	return rec, body
}

func TestHealthEndpoint(t *testing.T) {
	globaltime.SetMockTime(time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC))
	t.Cleanup(globaltime.ResetTime)

	server, _, _ := newTestServer(t)
	rec, body := doRequest(t, server, "/api/v1/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}
	if body.Status != "success" {
		t.Fatalf("health body status = %q, want success", body.Status)
	}
}

func TestTrendsEndpointNotGenerated(t *testing.T) {
	server, _, _ := newTestServer(t)
	rec, body := doRequest(t, server, "/api/v1/trends")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body.Status != "fail" {
		t.Fatalf("body status = %q, want fail", body.Status)
	}
}

func TestTrendsEndpointServesLatest(t *testing.T) {
	globaltime.SetMockTime(time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC))
	t.Cleanup(globaltime.ResetTime)

	server, statsDir, _ := newTestServer(t)

	items := []article.Article{{
		Title:   "Critical Windows Vulnerability Exploited in Wild",
		Date:    "2025-01-30",
		Tags:    []string{"vulnerability"},
		Urgency: article.UrgencyHigh,
	}}
	metrics := trends.NewAggregator(trends.Options{}, zerolog.Nop()).Aggregate(items, items, items)
	if err := trends.NewWriter(statsDir, zerolog.Nop()).Persist(metrics); err != nil {
		t.Fatalf("persist metrics: %v", err)
	}

	rec, body := doRequest(t, server, "/api/v1/trends")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", rec.Code, rec.Body.String())
	}
	if body.Status != "success" {
		t.Fatalf("body status = %q, want success", body.Status)
	}

	data, ok := body.Data.(map[string]any)
	if !ok {
		t.Fatalf("data is not an object: %T", body.Data)
	}
	kpis, ok := data["kpis"].(map[string]any)
	if !ok {
		t.Fatalf("kpis missing from payload: %v", data)
	}
	if got := kpis["top_tag"]; got != "vulnerability" {
		t.Fatalf("top_tag = %v, want vulnerability", got)
	}
}

func TestStatusEndpoint(t *testing.T) {
	globaltime.SetMockTime(time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC))
	t.Cleanup(globaltime.ResetTime)

	server, _, statusFile := newTestServer(t)

	rec, body := doRequest(t, server, "/api/v1/status")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 before first update", rec.Code)
	}
	if body.Status != "fail" {
		t.Fatalf("body status = %q, want fail", body.Status)
	}

	if err := runstatus.Write(statusFile, runstatus.New(7, "")); err != nil {
		t.Fatalf("write status: %v", err)
	}

	rec, body = doRequest(t, server, "/api/v1/status")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data, ok := body.Data.(map[string]any)
	if !ok {
		t.Fatalf("data is not an object: %T", body.Data)
	}
	if got := data["articles_count"]; got != float64(7) {
		t.Fatalf("articles_count = %v, want 7", got)
	}
}

func TestUnknownRouteUsesJSendFail(t *testing.T) {
	server, _, _ := newTestServer(t)
	rec, body := doRequest(t, server, "/api/v1/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body.Status != "fail" {
		t.Fatalf("body status = %q, want fail", body.Status)
	}
}
