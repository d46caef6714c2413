package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-directory/api"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = api.RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	api.RequestIDMiddleware(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if seen == "" {
		t.Fatalf("expected request id in context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("header %q does not match context id %q", got, seen)
	}

	// a second request gets a different id
	rec2 := httptest.NewRecorder()
	api.RequestIDMiddleware(inner).ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec2.Header().Get("X-Request-ID") == rec.Header().Get("X-Request-ID") {
		t.Fatalf("expected distinct request ids")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	api.RecoveryMiddleware(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}

func TestLoggingMiddlewarePassesThrough(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	api.LoggingMiddleware(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected handler status to pass through, got %d", rec.Code)
	}
}
