package leads

import (
	"strings"
	"time"
)

// Lead represents a stored sales-lead submission from the marketing site.
type Lead struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Message      string    `json:"message"`
	DemoInterest string    `json:"demoInterest"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SubmitLeadRequest represents the request body for submitting a lead
type SubmitLeadRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
	DemoInterest string `json:"demoInterest"`
}

// Normalize trims all fields and lower-cases the email address.
func (r *SubmitLeadRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
	r.DemoInterest = strings.TrimSpace(r.DemoInterest)
}

// Validate normalizes the request and checks that every required field is
// present. demoInterest is optional.
func (r *SubmitLeadRequest) Validate() error {
	r.Normalize()

	required := []struct {
		field string
		value string
	}{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"message", r.Message},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.field}
		}
	}
	return nil
}
