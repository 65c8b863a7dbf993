package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d within burst should be allowed", i)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Error("request over burst should be rejected")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	if !rl.Allow("a") {
		t.Fatal("first request from a should pass")
	}
	if rl.Allow("a") {
		t.Error("second request from a should be rejected")
	}
	if !rl.Allow("b") {
		t.Error("b's budget must be unaffected by a")
	}
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("429 should carry Retry-After")
	}
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	if got := extractIP(req); got != "10.0.0.1:5555" {
		t.Errorf("extractIP = %q", got)
	}

	req.Header.Set("X-Real-IP", "2.2.2.2")
	if got := extractIP(req); got != "2.2.2.2" {
		t.Errorf("extractIP with X-Real-IP = %q", got)
	}

	req.Header.Set("X-Forwarded-For", "3.3.3.3, 4.4.4.4")
	if got := extractIP(req); got != "3.3.3.3" {
		t.Errorf("extractIP with X-Forwarded-For = %q, want first hop", got)
	}
}
