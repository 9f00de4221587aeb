package leads

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for lead storage
type Repository interface {
	// Create validates the request, rejects duplicate email/phone, and
	// stores a new lead. Email conflicts win over phone conflicts.
	Create(ctx context.Context, req *SubmitLeadRequest) (*Lead, error)
	// List returns all leads ordered by creation time, newest first.
	List(ctx context.Context) ([]*Lead, error)
	// Delete removes the lead with the given id, returning
	// ErrLeadNotFound when no such lead exists.
	Delete(ctx context.Context, id uuid.UUID) error
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}

// InMemoryRepository is an in-memory implementation of Repository used in
// tests and local development without a database.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		leads: make(map[string]*Lead),
	}
}

// Create stores a new lead after the duplicate check.
func (r *InMemoryRepository) Create(ctx context.Context, req *SubmitLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Email match wins the conflict message when both could match.
	for _, existing := range r.leads {
		if existing.Email == req.Email {
			return nil, ErrEmailRegistered
		}
	}
	for _, existing := range r.leads {
		if existing.Phone == req.Phone {
			return nil, ErrPhoneRegistered
		}
	}

	lead := &Lead{
		ID:           uuid.New().String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      req.Message,
		DemoInterest: req.DemoInterest,
		CreatedAt:    time.Now().UTC(),
	}
	r.leads[lead.ID] = lead

	return lead, nil
}

// List returns all leads, newest first.
func (r *InMemoryRepository) List(ctx context.Context) ([]*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Lead, 0, len(r.leads))
	for _, lead := range r.leads {
		out = append(out, lead)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a lead by id.
func (r *InMemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, ok := r.leads[key]; !ok {
		return ErrLeadNotFound
	}
	delete(r.leads, key)
	return nil
}

// Ping always succeeds for the in-memory store.
func (r *InMemoryRepository) Ping(ctx context.Context) error {
	return nil
}
