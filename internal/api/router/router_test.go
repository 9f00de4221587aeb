package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wavecrest/lead-intake/internal/leads"
	"github.com/wavecrest/lead-intake/pkg/logging"
)

func newTestRouter(repo leads.Repository) http.Handler {
	return New(&Config{
		Logger:             logging.Default(),
		LeadsHandler:       leads.NewHandler(repo, nil, nil, logging.Default()),
		CORSAllowedOrigins: []string{"https://wavecrest.io"},
	})
}

func submission(n int) map[string]string {
	return map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     fmt.Sprintf("ada%d@example.com", n),
		"phone":     fmt.Sprintf("+1555010%d", n),
		"message":   "Interested in a demo",
	}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Liveness(t *testing.T) {
	r := newTestRouter(leads.NewInMemoryRepository())

	w := doJSON(t, r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("expected plain text liveness response, got %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("expected liveness banner body")
	}
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(leads.NewInMemoryRepository())

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRouter_SubmitListDeleteFlow(t *testing.T) {
	r := newTestRouter(leads.NewInMemoryRepository())

	// Submit two leads.
	for n := 0; n < 2; n++ {
		w := doJSON(t, r, http.MethodPost, "/api/submit", submission(n))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}
		time.Sleep(2 * time.Millisecond)
	}

	// List: newest first.
	w := doJSON(t, r, http.MethodGet, "/api/leads", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var all []leads.Lead
	if err := json.NewDecoder(w.Body).Decode(&all); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(all))
	}
	if !all[0].CreatedAt.After(all[1].CreatedAt) {
		t.Errorf("expected newest-first ordering, got %v then %v", all[0].CreatedAt, all[1].CreatedAt)
	}

	// Delete the first one.
	w = doJSON(t, r, http.MethodDelete, "/api/leads/"+all[0].ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	// It is gone from subsequent lists.
	w = doJSON(t, r, http.MethodGet, "/api/leads", nil)
	var remaining []leads.Lead
	_ = json.NewDecoder(w.Body).Decode(&remaining)
	if len(remaining) != 1 || remaining[0].ID == all[0].ID {
		t.Fatalf("expected the deleted lead to be gone, got %d leads", len(remaining))
	}

	// Deleting again yields 404.
	w = doJSON(t, r, http.MethodDelete, "/api/leads/"+all[0].ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestRouter_DeleteMalformedID(t *testing.T) {
	r := newTestRouter(leads.NewInMemoryRepository())

	w := doJSON(t, r, http.MethodDelete, "/api/leads/not-a-uuid", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestRouter_CORSDenialOnAnyPath(t *testing.T) {
	r := newTestRouter(leads.NewInMemoryRepository())

	for _, path := range []string{"/", "/api/submit", "/api/leads", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403 for %s, got %d", path, w.Code)
		}
	}
}

func TestRouter_CORSAllowedOrigin(t *testing.T) {
	r := newTestRouter(leads.NewInMemoryRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Origin", "https://wavecrest.io")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://wavecrest.io" {
		t.Errorf("expected allow origin header, got %q", got)
	}
}

func TestRouter_SubmitRateLimit(t *testing.T) {
	r := New(&Config{
		Logger:             logging.Default(),
		LeadsHandler:       leads.NewHandler(leads.NewInMemoryRepository(), nil, nil, logging.Default()),
		CORSAllowedOrigins: []string{"https://wavecrest.io"},
		SubmitRateLimit:    0.001,
		SubmitRateBurst:    1,
	})

	first := doJSON(t, r, http.MethodPost, "/api/submit", submission(1))
	if first.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, first.Code)
	}

	second := doJSON(t, r, http.MethodPost, "/api/submit", submission(2))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, second.Code)
	}

	// The limiter only guards the submit path.
	list := doJSON(t, r, http.MethodGet, "/api/leads", nil)
	if list.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, list.Code)
	}
}
