package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type recordedRequest struct {
	status   int
	duration time.Duration
}

type requestLog struct {
	entries []recordedRequest
}

func (l *requestLog) Record(status int, duration time.Duration) {
	l.entries = append(l.entries, recordedRequest{status: status, duration: duration})
}

func TestMetricsRecordsStatus(t *testing.T) {
	log := &requestLog{}
	ok := Metrics(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	missing := Metrics(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	ok.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	missing.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(log.entries) != 2 {
		t.Fatalf("expected two records, got %d", len(log.entries))
	}
	if log.entries[0].status != http.StatusOK || log.entries[1].status != http.StatusNotFound {
		t.Fatalf("unexpected statuses: %+v", log.entries)
	}
}

func TestSecureHeaders(t *testing.T) {
	handler := SecureHeaders(true)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("expected nosniff header")
	}
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Fatal("expected HSTS in production")
	}
}
