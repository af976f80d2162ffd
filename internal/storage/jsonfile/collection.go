package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/azizulsheikh/studio/internal/storage"
)

// collection is one JSON array file. mu guards every read-modify-write of
// the file so concurrent mutations cannot lose each other's updates.
type collection[T any] struct {
	mu   sync.Mutex
	name string
	path string
	id   func(*T) string
}

func newCollection[T any](dir, name string, id func(*T) string) *collection[T] {
	return &collection[T]{
		name: name,
		path: filepath.Join(dir, name+".json"),
		id:   id,
	}
}

// read loads the whole file. A missing or empty file is an empty collection.
// Callers must hold mu.
func (c *collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.name, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// write replaces the whole file with records, pretty-printed. The data goes
// to a temp file in the same directory first and is renamed over the
// original, so a crash never leaves a truncated collection behind.
// Callers must hold mu.
func (c *collection[T]) write(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.name, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), "."+c.name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", c.name, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", c.name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", c.name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %s: %w", c.name, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", c.name, err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", c.name, err)
	}
	return nil
}

func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.read()
}

// replaceAll overwrites the entire collection.
func (c *collection[T]) replaceAll(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(records)
}

func (c *collection[T]) get(ctx context.Context, id string) (*T, error) {
	records, err := c.list(ctx)
	if err != nil {
		return nil, err
	}
	if i := c.indexOf(records, id); i >= 0 {
		return &records[i], nil
	}
	return nil, fmt.Errorf("%s %s: %w", c.name, id, storage.ErrNotFound)
}

// mutate runs fn against the current records under the lock and writes the
// result back. Nothing is written when fn fails.
func (c *collection[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return c.write(updated)
}

func (c *collection[T]) insert(ctx context.Context, record T) error {
	return c.mutate(ctx, func(records []T) ([]T, error) {
		if c.indexOf(records, c.id(&record)) >= 0 {
			return nil, fmt.Errorf("%s %s already exists", c.name, c.id(&record))
		}
		return append(records, record), nil
	})
}

func (c *collection[T]) replace(ctx context.Context, record T) error {
	return c.mutate(ctx, func(records []T) ([]T, error) {
		i := c.indexOf(records, c.id(&record))
		if i < 0 {
			return nil, fmt.Errorf("%s %s: %w", c.name, c.id(&record), storage.ErrNotFound)
		}
		records[i] = record
		return records, nil
	})
}

func (c *collection[T]) remove(ctx context.Context, id string) error {
	return c.mutate(ctx, func(records []T) ([]T, error) {
		i := c.indexOf(records, id)
		if i < 0 {
			return nil, fmt.Errorf("%s %s: %w", c.name, id, storage.ErrNotFound)
		}
		return append(records[:i], records[i+1:]...), nil
	})
}

func (c *collection[T]) indexOf(records []T, id string) int {
	for i := range records {
		if c.id(&records[i]) == id {
			return i
		}
	}
	return -1
}
