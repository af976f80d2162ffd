package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/azizulsheikh/studio/internal/audit"
)

func TestEventStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "audit.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("SaveEvent persists data and metadata", func(t *testing.T) {
		e := audit.NewEvent(
			audit.WithType(audit.MemberCreated),
			audit.WithData(map[string]string{"id": "m1", "name": "Rahim"}),
			audit.WithMetadata("actor", "admin"),
		)
		e.CreatedAt = base
		if err := store.SaveEvent(ctx, e); err != nil {
			t.Fatalf("SaveEvent failed: %v", err)
		}

		events, err := store.ListEvents(ctx, audit.Filter{Type: audit.MemberCreated})
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(events))
		}
		got := events[0]
		if got.ID != e.ID {
			t.Errorf("ID mismatch: got %s, want %s", got.ID, e.ID)
		}
		if !got.CreatedAt.Equal(base) {
			t.Errorf("CreatedAt mismatch: got %v, want %v", got.CreatedAt, base)
		}
		if got.Metadata["actor"] != "admin" {
			t.Errorf("Metadata mismatch: %v", got.Metadata)
		}
		var data map[string]string
		if err := json.Unmarshal(got.Data.(json.RawMessage), &data); err != nil {
			t.Fatalf("Failed to decode data: %v", err)
		}
		if data["name"] != "Rahim" {
			t.Errorf("Data mismatch: %v", data)
		}
	})

	t.Run("ListEvents orders newest first and honors limit", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			e := audit.NewEvent(audit.WithType(audit.PaymentCreated))
			e.CreatedAt = base.Add(time.Duration(i) * time.Hour)
			if err := store.SaveEvent(ctx, e); err != nil {
				t.Fatalf("SaveEvent failed: %v", err)
			}
		}

		events, err := store.ListEvents(ctx, audit.Filter{Limit: 2})
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("Expected 2 events, got %d", len(events))
		}
		if !events[0].CreatedAt.After(events[1].CreatedAt) {
			t.Errorf("Events not newest first: %v, %v", events[0].CreatedAt, events[1].CreatedAt)
		}
	})

	t.Run("ListEvents with unknown type is empty", func(t *testing.T) {
		events, err := store.ListEvents(ctx, audit.Filter{Type: "nothing.happened"})
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		if len(events) != 0 {
			t.Errorf("Expected 0 events, got %d", len(events))
		}
	})
}

func TestWorkerWithEventStore(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	worker := audit.NewWorker(store, 10, nil)
	worker.Start()
	worker.Record(audit.NewEvent(audit.WithType(audit.ExpenseCreated)))
	worker.Record(audit.NewEvent(audit.WithType(audit.ExpenseDeleted)))
	worker.Shutdown()

	events, err := store.ListEvents(context.Background(), audit.Filter{})
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("Expected 2 events, got %d", len(events))
	}
}
