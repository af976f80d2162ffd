package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/azizulsheikh/studio/internal/models"
	"github.com/azizulsheikh/studio/internal/storage"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func payment(id, memberID string, amount int64) models.Payment {
	return models.Payment{
		ID:            id,
		MemberID:      memberID,
		Amount:        decimal.NewFromInt(amount),
		Timestamp:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		PaymentMethod: models.MethodPayPal,
		Status:        models.StatusCompleted,
	}
}

func TestJSONStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("List on missing files returns empty collections", func(t *testing.T) {
		members, err := store.ListMembers(ctx)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if members == nil || len(members) != 0 {
			t.Errorf("Expected empty non-nil slice, got %#v", members)
		}

		payments, err := store.ListPayments(ctx)
		if err != nil {
			t.Fatalf("ListPayments failed: %v", err)
		}
		if len(payments) != 0 {
			t.Errorf("Expected 0 payments, got %d", len(payments))
		}

		expenses, err := store.ListExpenses(ctx)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(expenses) != 0 {
			t.Errorf("Expected 0 expenses, got %d", len(expenses))
		}
	})

	t.Run("CreateMember and GetMember", func(t *testing.T) {
		member := &models.Member{
			ID:       "m1",
			Name:     "Rahim",
			Email:    "rahim@example.com",
			Role:     models.RoleMember,
			JoinDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		if err := store.CreateMember(ctx, member); err != nil {
			t.Fatalf("CreateMember failed: %v", err)
		}

		got, err := store.GetMember(ctx, "m1")
		if err != nil {
			t.Fatalf("GetMember failed: %v", err)
		}
		if got.Name != "Rahim" || got.Email != "rahim@example.com" {
			t.Errorf("Unexpected member: %+v", got)
		}
		if !got.JoinDate.Equal(member.JoinDate) {
			t.Errorf("JoinDate mismatch: got %v, want %v", got.JoinDate, member.JoinDate)
		}
	})

	t.Run("CreateMember rejects duplicate ID", func(t *testing.T) {
		err := store.CreateMember(ctx, &models.Member{ID: "m1", Name: "Dup"})
		if err == nil {
			t.Error("Expected error for duplicate member ID, got nil")
		}
	})

	t.Run("GetMember returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetMember(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateMember replaces fields", func(t *testing.T) {
		member, err := store.GetMember(ctx, "m1")
		if err != nil {
			t.Fatalf("GetMember failed: %v", err)
		}
		member.Name = "Rahim Uddin"
		if err := store.UpdateMember(ctx, member); err != nil {
			t.Fatalf("UpdateMember failed: %v", err)
		}

		got, _ := store.GetMember(ctx, "m1")
		if got.Name != "Rahim Uddin" {
			t.Errorf("Name not updated: got %s", got.Name)
		}
	})

	t.Run("UpdatePayment unknown ID returns ErrNotFound", func(t *testing.T) {
		p := payment("missing", "m1", 10)
		if err := store.UpdatePayment(ctx, &p); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteExpense unknown ID returns ErrNotFound", func(t *testing.T) {
		if err := store.DeleteExpense(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Expense lifecycle", func(t *testing.T) {
		expense := &models.Expense{
			ID:          "e1",
			Description: "Cattle feed",
			Amount:      decimal.RequireFromString("1250.50"),
			Date:        time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		expense.Description = "Cattle feed (2 sacks)"
		if err := store.UpdateExpense(ctx, expense); err != nil {
			t.Fatalf("UpdateExpense failed: %v", err)
		}
		got, err := store.GetExpense(ctx, "e1")
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got.Description != "Cattle feed (2 sacks)" || !got.Amount.Equal(expense.Amount) {
			t.Errorf("Unexpected expense: %+v", got)
		}
		if err := store.DeleteExpense(ctx, "e1"); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}
		if _, err := store.GetExpense(ctx, "e1"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestDeleteMemberCascadesPayments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"m1", "m2"} {
		if err := store.CreateMember(ctx, &models.Member{ID: id, Name: "Member " + id, Role: models.RoleMember}); err != nil {
			t.Fatalf("CreateMember failed: %v", err)
		}
	}
	for i, memberID := range []string{"m1", "m2", "m1", "m1"} {
		p := payment(fmt.Sprintf("p%d", i), memberID, int64(10*(i+1)))
		if err := store.CreatePayment(ctx, &p); err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
	}

	removed, err := store.DeleteMember(ctx, "m1")
	if err != nil {
		t.Fatalf("DeleteMember failed: %v", err)
	}
	if removed != 3 {
		t.Errorf("Expected 3 payments removed, got %d", removed)
	}

	if _, err := store.GetMember(ctx, "m1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected member to be gone, got %v", err)
	}

	payments, err := store.ListPayments(ctx)
	if err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}
	if len(payments) != 1 || payments[0].MemberID != "m2" {
		t.Errorf("Expected only m2's payment to remain, got %+v", payments)
	}

	if _, err := store.DeleteMember(ctx, "m1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestRoundTripPreservesRecords(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Written the way the original data files look: numeric amounts,
	// millisecond ISO timestamps, 2-space indentation.
	original := `[
  {
    "id": "payment-1717000000000",
    "memberId": "member-1",
    "amount": 1500.75,
    "timestamp": "2024-05-29T16:26:40.000Z",
    "paymentMethod": "Bank Transfer",
    "description": "Qurbani share",
    "status": "Completed"
  }
]`
	path := filepath.Join(store.Dir(), "payments.json")
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	payments, err := store.ListPayments(ctx)
	if err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}
	if err := store.ReplacePayments(ctx, payments); err != nil {
		t.Fatalf("ReplacePayments failed: %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if !strings.Contains(string(written), "\n  {\n    \"id\"") {
		t.Errorf("Expected pretty-printed output, got:\n%s", written)
	}

	var before, after []map[string]any
	if err := json.Unmarshal([]byte(original), &before); err != nil {
		t.Fatalf("Failed to decode original: %v", err)
	}
	if err := json.Unmarshal(written, &after); err != nil {
		t.Fatalf("Failed to decode written: %v", err)
	}
	if len(after) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(after))
	}
	for _, key := range []string{"id", "memberId", "amount", "paymentMethod", "description", "status"} {
		if fmt.Sprint(before[0][key]) != fmt.Sprint(after[0][key]) {
			t.Errorf("%s changed: got %v, want %v", key, after[0][key], before[0][key])
		}
	}
	ts, err := time.Parse(time.RFC3339, after[0]["timestamp"].(string))
	if err != nil || !ts.Equal(time.Date(2024, 5, 29, 16, 26, 40, 0, time.UTC)) {
		t.Errorf("timestamp changed: got %v", after[0]["timestamp"])
	}
}

func TestEmptyCollectionWritesArray(t *testing.T) {
	store := newTestStore(t)
	if err := store.ReplaceExpenses(context.Background(), nil); err != nil {
		t.Fatalf("ReplaceExpenses failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(store.Dir(), "expenses.json"))
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Expected [], got %q", data)
	}
}

func TestCorruptFileIsAnError(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(store.Dir(), "members.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}
	if _, err := store.ListMembers(context.Background()); err == nil {
		t.Error("Expected decode error, got nil")
	}
}

func TestPaymentRequiresMember(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.CreateMember(ctx, &models.Member{ID: "m1", Name: "Rahim", Role: models.RoleMember}); err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}
	p := payment("p1", "m1", 100)
	if err := store.CreatePayment(ctx, &p); err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}

	orphan := payment("p2", "ghost", 50)
	if err := store.CreatePayment(ctx, &orphan); !errors.Is(err, storage.ErrMemberMissing) {
		t.Errorf("CreatePayment: expected ErrMemberMissing, got %v", err)
	}

	moved := payment("p1", "ghost", 100)
	if err := store.UpdatePayment(ctx, &moved); !errors.Is(err, storage.ErrMemberMissing) {
		t.Errorf("UpdatePayment: expected ErrMemberMissing, got %v", err)
	}

	if _, err := store.DeleteMember(ctx, "m1"); err != nil {
		t.Fatalf("DeleteMember failed: %v", err)
	}
	late := payment("p3", "m1", 25)
	if err := store.CreatePayment(ctx, &late); !errors.Is(err, storage.ErrMemberMissing) {
		t.Errorf("CreatePayment after delete: expected ErrMemberMissing, got %v", err)
	}

	payments, err := store.ListPayments(ctx)
	if err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}
	if len(payments) != 0 {
		t.Errorf("Expected no payments, got %+v", payments)
	}
}

func TestConcurrentCreatesAreNotLost(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	if err := store.CreateMember(ctx, &models.Member{ID: "m1", Name: "Rahim", Role: models.RoleMember}); err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}

	const n = 25
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := payment(fmt.Sprintf("p%d", i), "m1", int64(i+1))
			errs <- store.CreatePayment(ctx, &p)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
	}

	payments, err := store.ListPayments(ctx)
	if err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}
	if len(payments) != n {
		t.Errorf("Expected %d payments, got %d", n, len(payments))
	}
}

func TestCanceledContext(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.ListMembers(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
