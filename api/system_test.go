package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-directory/api"
)

func TestHealthHandler(t *testing.T) {
	h := &api.SystemHandler{}
	rec := httptest.NewRecorder()
	h.HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode health body: %v", err)
	}
	if body["status"] != "ok" || body["service"] != "employee-directory" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestVersionHandler(t *testing.T) {
	h := &api.SystemHandler{}
	rec := httptest.NewRecorder()
	h.VersionHandler("1.2.3", "2026-08-28")(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode version body: %v", err)
	}
	if body["version"] != "1.2.3" || body["buildTime"] != "2026-08-28" {
		t.Fatalf("unexpected version body: %v", body)
	}
}
