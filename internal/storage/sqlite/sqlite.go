// Package sqlite provides a SQLite-backed audit event log.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/azizulsheikh/studio/internal/audit"
)

// Ensure EventStore implements audit.Logger
var _ audit.Logger = (*EventStore)(nil)

// DefaultListLimit caps ListEvents when no limit is given.
const DefaultListLimit = 100

// EventStore implements audit.Logger using SQLite.
type EventStore struct {
	db *sql.DB
}

// New creates a new EventStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*EventStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The worker is the only writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &EventStore{db: db}, nil
}

// Close closes the database connection.
func (s *EventStore) Close() error {
	return s.db.Close()
}

// SaveEvent persists an event.
func (s *EventStore) SaveEvent(ctx context.Context, e audit.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	var data any
	if e.Data != nil {
		encoded, err := json.Marshal(e.Data)
		if err != nil {
			return fmt.Errorf("failed to encode event data: %w", err)
		}
		data = string(encoded)
	}
	metadata, err := json.Marshal(e.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode event metadata: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO events (id, event_type, event_data, event_metadata, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID.String(), e.Type, data, string(metadata), e.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// ListEvents returns events newest first, optionally filtered by type.
func (s *EventStore) ListEvents(ctx context.Context, f audit.Filter) ([]audit.Event, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := `SELECT id, event_type, event_data, event_metadata, created_at FROM events`
	args := []any{}
	if f.Type != "" {
		query += ` WHERE event_type = ?`
		args = append(args, f.Type)
	}
	query += ` ORDER BY created_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]audit.Event, 0)
	for rows.Next() {
		var (
			e         audit.Event
			id        string
			data      sql.NullString
			metadata  sql.NullString
			createdAt int64
		)
		if err := rows.Scan(&id, &e.Type, &data, &metadata, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		e.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event id %q: %w", id, err)
		}
		e.CreatedAt = time.UnixMilli(createdAt).UTC()
		if data.Valid {
			e.Data = json.RawMessage(data.String)
		}
		if metadata.Valid && metadata.String != "" {
			if err := json.Unmarshal([]byte(metadata.String), &e.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode event metadata: %w", err)
			}
		}

		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}
