package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter_AllowWithinBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("expected request %d within burst to be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("expected request beyond burst to be denied")
	}
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("expected first IP to be allowed")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatal("expected second IP to have its own bucket")
	}
}

func TestRateLimit_Middleware(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mw := RateLimit(0.001, 1)
	wrapped := mw(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/submit", nil)
	req.Header.Set("X-Real-Ip", "10.0.0.9")

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, rec.Code)
	}
}
