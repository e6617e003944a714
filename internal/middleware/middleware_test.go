package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fieldops/pkg/e"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{"match", "secret", "secret", http.StatusOK},
		{"mismatch", "secret", "nope", http.StatusUnauthorized},
		{"missing", "secret", "", http.StatusUnauthorized},
		{"unconfigured key rejects everything", "", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			rr := httptest.NewRecorder()
			APIKeyMiddleware(tt.configured)(okHandler()).ServeHTTP(rr, req)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	t.Parallel()

	l := NewRateLimiter(1, 2, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h := l.Middleware(okHandler())

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	for i := 0; i < 2; i++ {
		if rr := do("10.0.0.1:1234"); rr.Code != http.StatusOK {
			t.Fatalf("request %d within burst got %d", i, rr.Code)
		}
	}
	rr := do("10.0.0.1:5678")
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") != "1" {
		t.Fatalf("unexpected Retry-After %q", rr.Header().Get("Retry-After"))
	}
	if !strings.Contains(rr.Body.String(), "too many requests") {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}

	if rr := do("10.0.0.2:1234"); rr.Code != http.StatusOK {
		t.Fatalf("other IPs must have their own bucket, got %d", rr.Code)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(1, 1, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	l.now = func() time.Time { return now }

	l.limiterFor("a")
	now = now.Add(30 * time.Second)
	l.limiterFor("b")
	now = now.Add(45 * time.Second)

	if remaining := l.Cleanup(); remaining != 1 {
		t.Fatalf("expected one visitor left, got %d", remaining)
	}
	if _, ok := l.visitors["b"]; !ok {
		t.Fatal("recent visitor evicted")
	}
}

type bindTarget struct {
	Name string  `json:"name" validate:"required"`
	Lat  float64 `json:"lat" validate:"lat"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"ok", `{"name":"a","lat":10}`, false},
		{"empty", ``, true},
		{"malformed", `{"name":`, true},
		{"unknown field", `{"name":"a","extra":1}`, true},
		{"trailing data", `{"name":"a"}{"name":"b"}`, true},
		{"validation", `{"name":"","lat":10}`, true},
		{"custom tag", `{"name":"a","lat":91}`, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst bindTarget
			err := DecodeJSON(httptest.NewRecorder(), req, &dst)
			if tt.wantErr {
				if !errors.Is(err, e.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		})
	}
}
