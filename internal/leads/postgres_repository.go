package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres error code for unique-constraint violations.
const uniqueViolation = "23505"

// DB is the subset of pgxpool.Pool the repository needs. Satisfied by
// *pgxpool.Pool and by pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresRepository stores leads in the relational database.
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository initializes a repo backed by a pgx pool.
func NewPostgresRepository(db DB) *PostgresRepository {
	if db == nil {
		panic("leads: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new row after checking for duplicate contact identity.
// The pre-check produces the precedence rule (email conflict wins when both
// match); the UNIQUE constraints on email and phone close the race between
// concurrent submissions, and their violations map to the same errors.
func (r *PostgresRepository) Create(ctx context.Context, req *SubmitLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var emailTaken, phoneTaken bool
	checkQuery := `
		SELECT
			EXISTS (SELECT 1 FROM leads WHERE email = $1),
			EXISTS (SELECT 1 FROM leads WHERE phone = $2)
	`
	if err := r.db.QueryRow(ctx, checkQuery, req.Email, req.Phone).Scan(&emailTaken, &phoneTaken); err != nil {
		return nil, fmt.Errorf("leads: duplicate check failed: %w", err)
	}
	if emailTaken {
		return nil, ErrEmailRegistered
	}
	if phoneTaken {
		return nil, ErrPhoneRegistered
	}

	id := uuid.New()
	insertQuery := `
		INSERT INTO leads (id, first_name, last_name, email, phone, message, demo_interest)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, insertQuery,
		id,
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		req.Message,
		req.DemoInterest,
	).Scan(&createdAt); err != nil {
		if conflict := conflictFromPgError(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("leads: insert failed: %w", err)
	}

	return &Lead{
		ID:           id.String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      req.Message,
		DemoInterest: req.DemoInterest,
		CreatedAt:    createdAt,
	}, nil
}

// List returns every stored lead, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*Lead, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, message, demo_interest, created_at
		FROM leads
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("leads: list failed: %w", err)
	}
	defer rows.Close()

	out := []*Lead{}
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.FirstName,
			&lead.LastName,
			&lead.Email,
			&lead.Phone,
			&lead.Message,
			&lead.DemoInterest,
			&lead.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("leads: scan failed: %w", err)
		}
		out = append(out, &lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leads: list failed: %w", err)
	}
	return out, nil
}

// Delete removes the lead with the given id.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("leads: delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeadNotFound
	}
	return nil
}

// Ping checks database connectivity.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// conflictFromPgError maps a unique-constraint violation to the matching
// conflict error, or returns nil for anything else.
func conflictFromPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case "leads_phone_key":
		return ErrPhoneRegistered
	default:
		// leads_email_key, or an unnamed constraint: email wins.
		return ErrEmailRegistered
	}
}
