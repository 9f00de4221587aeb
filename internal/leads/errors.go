package leads

import "errors"

var (
	// ErrEmailRegistered is returned when a lead with the same email exists.
	// It takes precedence over ErrPhoneRegistered when both match.
	ErrEmailRegistered = errors.New("email already registered")

	// ErrPhoneRegistered is returned when a lead with the same phone exists
	ErrPhoneRegistered = errors.New("phone already registered")

	// ErrLeadNotFound is returned when a lead is not found
	ErrLeadNotFound = errors.New("lead not found")
)

// ValidationError reports a missing required field in a submission.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}
