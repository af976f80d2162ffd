package models

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
)

// ValidationError reports field-level problems with caller input.
// Fields maps a JSON field name to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// fieldErrors collects messages and builds a *ValidationError when non-empty.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, exists := f[field]; !exists {
		f[field] = msg
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// Validate checks member fields. Name and email are trimmed in place.
func (m *MemberFields) Validate() error {
	errs := fieldErrors{}
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.ImageURL = strings.TrimSpace(m.ImageURL)

	if len([]rune(m.Name)) < 2 {
		errs.add("name", "Name must be at least 2 characters.")
	}
	if addr, err := mail.ParseAddress(m.Email); err != nil || addr.Address != m.Email {
		errs.add("email", "Please enter a valid email.")
	}
	if !m.Role.Valid() {
		errs.add("role", "Role must be admin or member.")
	}
	return errs.err()
}

// Validate checks payment fields. Member existence is checked by the caller.
func (p *PaymentFields) Validate() error {
	errs := fieldErrors{}
	p.MemberID = strings.TrimSpace(p.MemberID)
	p.Description = strings.TrimSpace(p.Description)

	if p.MemberID == "" {
		errs.add("memberId", "Please select a member.")
	}
	if !p.Amount.IsPositive() {
		errs.add("amount", "Amount must be positive.")
	}
	if !p.PaymentMethod.Valid() {
		errs.add("paymentMethod", "Payment method must be Credit Card, PayPal or Bank Transfer.")
	}
	if !p.Status.Valid() {
		errs.add("status", "Status must be Completed, Pending or Failed.")
	}
	return errs.err()
}

// Validate checks expense fields.
func (e *ExpenseFields) Validate() error {
	errs := fieldErrors{}
	e.Description = strings.TrimSpace(e.Description)

	if e.Description == "" {
		errs.add("description", "Description is required.")
	}
	if !e.Amount.IsPositive() {
		errs.add("amount", "Amount must be positive.")
	}
	return errs.err()
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
