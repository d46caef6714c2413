package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"employee-directory/api"
	dbfs "employee-directory/db"
	"employee-directory/internal/config"
	"employee-directory/internal/db"
)

func TestSetupRoutes(t *testing.T) {
	ctx := context.Background()
	d, err := db.New(ctx, filepath.Join(t.TempDir(), "employees.db"))
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		d.Close()
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Addr:           ":0",
		APITimeout:     5 * time.Second,
		DatabasePath:   "unused",
		AllowedOrigins: []string{"*"},
	}

	srv := httptest.NewServer(api.SetupRoutes(cfg, "test", "now", d))
	defer func() { srv.Close(); d.Close() }()

	res, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("health: expected 200 got %d", res.StatusCode)
	}
	if res.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}

	res, err = http.Get(srv.URL + "/employees")
	if err != nil {
		t.Fatalf("get employees: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("employees: expected 200 got %d", res.StatusCode)
	}

	// CORS preflight is answered without hitting the handlers
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/employees", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNoContent {
		t.Fatalf("preflight: expected 200 or 204 got %d", res.StatusCode)
	}
	if res.Header.Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("expected CORS allow-origin header")
	}
}
