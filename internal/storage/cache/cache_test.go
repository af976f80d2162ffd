package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/azizulsheikh/studio/internal/models"
	"github.com/azizulsheikh/studio/internal/storage"
	"github.com/azizulsheikh/studio/internal/storage/jsonfile"
)

// countingStore counts list calls that reach the backend.
type countingStore struct {
	storage.Store
	memberLists  int
	paymentLists int
}

func (c *countingStore) ListMembers(ctx context.Context) ([]models.Member, error) {
	c.memberLists++
	return c.Store.ListMembers(ctx)
}

func (c *countingStore) ListPayments(ctx context.Context) ([]models.Payment, error) {
	c.paymentLists++
	return c.Store.ListPayments(ctx)
}

func setupCache(t *testing.T) (*Store, *countingStore) {
	t.Helper()
	backend, err := jsonfile.New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}
	counting := &countingStore{Store: backend}
	return New(counting), counting
}

func TestListIsServedFromCache(t *testing.T) {
	store, counting := setupCache(t)
	ctx := context.Background()

	for range 3 {
		if _, err := store.ListMembers(ctx); err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
	}
	if counting.memberLists != 1 {
		t.Errorf("Expected 1 backend read, got %d", counting.memberLists)
	}
}

func TestMutationInvalidates(t *testing.T) {
	store, counting := setupCache(t)
	ctx := context.Background()

	var invalidated []Collection
	store.OnInvalidate = func(c Collection) { invalidated = append(invalidated, c) }

	if _, err := store.ListMembers(ctx); err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if err := store.CreateMember(ctx, &models.Member{ID: "m1", Name: "Karim"}); err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}

	members, err := store.ListMembers(ctx)
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members) != 1 {
		t.Errorf("Expected fresh list with 1 member, got %d", len(members))
	}
	if counting.memberLists != 2 {
		t.Errorf("Expected 2 backend reads, got %d", counting.memberLists)
	}
	if len(invalidated) != 1 || invalidated[0] != Members {
		t.Errorf("Expected members invalidation, got %v", invalidated)
	}
}

func TestDeleteMemberInvalidatesPayments(t *testing.T) {
	store, counting := setupCache(t)
	ctx := context.Background()

	if err := store.CreateMember(ctx, &models.Member{ID: "m1", Name: "Karim"}); err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}
	if err := store.CreatePayment(ctx, &models.Payment{ID: "p1", MemberID: "m1"}); err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	if _, err := store.ListPayments(ctx); err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}

	if _, err := store.DeleteMember(ctx, "m1"); err != nil {
		t.Fatalf("DeleteMember failed: %v", err)
	}

	payments, err := store.ListPayments(ctx)
	if err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}
	if len(payments) != 0 {
		t.Errorf("Expected cascade to be visible, got %d payments", len(payments))
	}
	if counting.paymentLists != 2 {
		t.Errorf("Expected 2 backend payment reads, got %d", counting.paymentLists)
	}
}

func TestCachedSliceIsACopy(t *testing.T) {
	store, _ := setupCache(t)
	ctx := context.Background()

	if err := store.CreateMember(ctx, &models.Member{ID: "m1", Name: "Karim"}); err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}
	first, _ := store.ListMembers(ctx)
	first[0].Name = "changed by caller"

	second, _ := store.ListMembers(ctx)
	if second[0].Name != "Karim" {
		t.Errorf("Cached snapshot was mutated through a returned slice: %s", second[0].Name)
	}
}

func TestGetMissingRecord(t *testing.T) {
	store, _ := setupCache(t)
	if _, err := store.GetPayment(context.Background(), "nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
