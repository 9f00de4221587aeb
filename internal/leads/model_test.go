package leads

import (
	"errors"
	"testing"
)

func validSubmission() SubmitLeadRequest {
	return SubmitLeadRequest{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "Ada@Example.com",
		Phone:        "+15550100",
		Message:      "Interested in the analytics product",
		DemoInterest: "yes",
	}
}

func TestValidate_NormalizesFields(t *testing.T) {
	req := SubmitLeadRequest{
		FirstName:    "  Ada ",
		LastName:     " Lovelace\t",
		Email:        " ADA@Example.COM ",
		Phone:        " +15550100 ",
		Message:      " hello ",
		DemoInterest: "  ",
	}

	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.FirstName != "Ada" {
		t.Errorf("expected trimmed first name, got %q", req.FirstName)
	}
	if req.Email != "ada@example.com" {
		t.Errorf("expected lower-cased email, got %q", req.Email)
	}
	if req.Phone != "+15550100" {
		t.Errorf("expected trimmed phone, got %q", req.Phone)
	}
	if req.DemoInterest != "" {
		t.Errorf("expected empty demo interest, got %q", req.DemoInterest)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*SubmitLeadRequest)
		field string
	}{
		{"missing first name", func(r *SubmitLeadRequest) { r.FirstName = " " }, "firstName"},
		{"missing last name", func(r *SubmitLeadRequest) { r.LastName = "" }, "lastName"},
		{"missing email", func(r *SubmitLeadRequest) { r.Email = "  " }, "email"},
		{"missing phone", func(r *SubmitLeadRequest) { r.Phone = "" }, "phone"},
		{"missing message", func(r *SubmitLeadRequest) { r.Message = "\t" }, "message"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmission()
			tc.edit(&req)

			err := req.Validate()
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, validationErr.Field)
			}
		})
	}
}

func TestValidate_DemoInterestOptional(t *testing.T) {
	req := validSubmission()
	req.DemoInterest = ""

	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
