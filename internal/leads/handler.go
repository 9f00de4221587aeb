package leads

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wavecrest/lead-intake/internal/observability/metrics"
	"github.com/wavecrest/lead-intake/pkg/logging"
)

// Notifier delivers best-effort alerts about newly stored leads. A send
// failure must never surface to the submitting client.
type Notifier interface {
	LeadCreated(lead *Lead)
}

// Handler handles HTTP requests for leads
type Handler struct {
	repo     Repository
	notifier Notifier
	metrics  *metrics.IntakeMetrics
	logger   *logging.Logger
}

// NewHandler creates a new leads handler. notifier and m may be nil.
func NewHandler(repo Repository, notifier Notifier, m *metrics.IntakeMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Submit handles POST /api/submit requests
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveSubmission("invalid")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lead, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.metrics.ObserveSubmission("invalid")
			writeError(w, http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, ErrEmailRegistered), errors.Is(err, ErrPhoneRegistered):
			h.metrics.ObserveSubmission("conflict")
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to create lead", "error", err)
			h.metrics.ObserveSubmission("error")
			writeError(w, http.StatusInternalServerError, "failed to submit lead")
		}
		return
	}

	h.logger.Info("lead created", "id", lead.ID, "email", lead.Email)
	h.metrics.ObserveSubmission("created")

	// Best-effort notification, independent of the response.
	if h.notifier != nil {
		h.notifier.LeadCreated(lead)
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Lead submitted successfully",
	})
}

// List handles GET /api/leads requests
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list leads", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list leads")
		return
	}

	writeJSON(w, http.StatusOK, all)
}

// Delete handles DELETE /api/leads/{id} requests
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			writeError(w, http.StatusNotFound, ErrLeadNotFound.Error())
			return
		}
		h.logger.Error("failed to delete lead", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete lead")
		return
	}

	h.logger.Info("lead deleted", "id", id)
	h.metrics.ObserveLeadDeleted()
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Lead deleted successfully",
	})
}

// Health handles GET /health requests, including a store ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Ping(r.Context()); err != nil {
		h.logger.Error("store ping failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
