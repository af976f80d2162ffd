package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"0", "", "BDT 0.00"},
		{"5", "BDT", "BDT 5.00"},
		{"999.999", "BDT", "BDT 1,000.00"},
		{"1250.5", "BDT", "BDT 1,250.50"},
		{"1234567.891", "USD", "USD 1,234,567.89"},
		{"-850", "BDT", "BDT -850.00"},
		{"-1000", "BDT", "BDT -1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := FormatAmount(decimal.RequireFromString(tt.amount), tt.currency)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMemberFieldsValidate(t *testing.T) {
	tests := []struct {
		name       string
		fields     MemberFields
		wantFields []string
	}{
		{
			name:   "valid",
			fields: MemberFields{Name: "Karim", Email: "karim@example.com", Role: RoleMember},
		},
		{
			name:   "two-rune unicode name",
			fields: MemberFields{Name: "রহ", Email: "r@example.com", Role: RoleAdmin},
		},
		{
			name:       "whitespace name",
			fields:     MemberFields{Name: "   K   ", Email: "k@example.com", Role: RoleMember},
			wantFields: []string{"name"},
		},
		{
			name:       "display-name email",
			fields:     MemberFields{Name: "Karim", Email: "Karim <karim@example.com>", Role: RoleMember},
			wantFields: []string{"email"},
		},
		{
			name:       "everything wrong",
			fields:     MemberFields{},
			wantFields: []string{"email", "name", "role"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFields(t, tt.fields.Validate(), tt.wantFields)
		})
	}
}

func TestPaymentFieldsValidate(t *testing.T) {
	valid := PaymentFields{
		MemberID:      "m1",
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: MethodBankTransfer,
		Status:        StatusPending,
	}

	tests := []struct {
		name       string
		mutate     func(*PaymentFields)
		wantFields []string
	}{
		{name: "valid", mutate: func(*PaymentFields) {}},
		{name: "blank member", mutate: func(p *PaymentFields) { p.MemberID = "  " }, wantFields: []string{"memberId"}},
		{name: "zero amount", mutate: func(p *PaymentFields) { p.Amount = decimal.Zero }, wantFields: []string{"amount"}},
		{name: "negative amount", mutate: func(p *PaymentFields) { p.Amount = decimal.NewFromInt(-1) }, wantFields: []string{"amount"}},
		{name: "unknown method", mutate: func(p *PaymentFields) { p.PaymentMethod = "Cash" }, wantFields: []string{"paymentMethod"}},
		{name: "unknown status", mutate: func(p *PaymentFields) { p.Status = "Refunded" }, wantFields: []string{"status"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := valid
			tt.mutate(&fields)
			assertFields(t, fields.Validate(), tt.wantFields)
		})
	}
}

func TestExpenseFieldsValidate(t *testing.T) {
	assertFields(t, (&ExpenseFields{Description: "Feed", Amount: decimal.NewFromInt(1)}).Validate(), nil)
	assertFields(t, (&ExpenseFields{Description: " ", Amount: decimal.Zero}).Validate(), []string{"amount", "description"})
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "too short", "email": "invalid"}}
	want := "validation failed: email: invalid; name: too short"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestPaymentJSON(t *testing.T) {
	p := Payment{
		ID:            "p1",
		MemberID:      "m1",
		Amount:        decimal.RequireFromString("1250.50"),
		Timestamp:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		PaymentMethod: MethodCreditCard,
		Status:        StatusCompleted,
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	s := string(data)

	for _, want := range []string{`"amount":1250.5`, `"paymentMethod":"Credit Card"`, `"status":"Completed"`, `"timestamp":"2024-05-01T10:00:00Z"`} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %s in %s", want, s)
		}
	}
	if strings.Contains(s, "description") {
		t.Errorf("empty description should be omitted: %s", s)
	}
}

func assertFields(t *testing.T, err error, want []string) {
	t.Helper()
	if len(want) == 0 {
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		return
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != len(want) {
		t.Errorf("expected fields %v, got %v", want, vErr.Fields)
	}
	for _, f := range want {
		if _, ok := vErr.Fields[f]; !ok {
			t.Errorf("expected error on %q, got %v", f, vErr.Fields)
		}
	}
}
