package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devfolio/devfolio/internal/auth"
	"github.com/devfolio/devfolio/internal/metrics"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		wantStatus int
		wantNext   bool
	}{
		{name: "correct key", key: "topsecret", wantStatus: http.StatusOK, wantNext: true},
		{name: "wrong key", key: "nope", wantStatus: http.StatusUnauthorized, wantNext: false},
		{name: "missing key", key: "", wantStatus: http.StatusUnauthorized, wantNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := metrics.NewInMemory()
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			mw := AdminAuth(AdminAuthConfig{
				Logger:   testLogger(),
				Verifier: auth.NewStaticKeyVerifier("topsecret"),
				Metrics:  recorder,
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)
			if tt.key != "" {
				req.Header.Set(AdminKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()

			mw(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if nextCalled != tt.wantNext {
				t.Errorf("next called = %v, want %v", nextCalled, tt.wantNext)
			}

			wantFailures := uint64(1)
			if tt.wantNext {
				wantFailures = 0
			}
			if got := recorder.Snapshot().AuthFailures; got != wantFailures {
				t.Errorf("auth failures = %d, want %d", got, wantFailures)
			}
		})
	}
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RequestID(next).ServeHTTP(rec, req)

	if seen == "" {
		t.Error("expected a generated request id in context")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Errorf("response header %q does not match context id %q", got, seen)
	}
}

func TestRequestID_HonorsIncomingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := GetRequestID(r.Context()); got != "client-supplied" {
			t.Errorf("expected client-supplied id, got %q", got)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	rec := httptest.NewRecorder()

	RequestID(next).ServeHTTP(rec, req)
}

func TestRecoverer_ConvertsPanicTo500(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Recoverer(testLogger())(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if body != `{"message":"Server error, please try again later"}` {
		t.Errorf("unexpected body %q", body)
	}
}
