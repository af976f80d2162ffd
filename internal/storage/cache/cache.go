// Package cache provides a read-through snapshot cache in front of a
// storage.Store. List results are cached per collection and dropped after
// every successful mutation that touches the collection.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/azizulsheikh/studio/internal/models"
	"github.com/azizulsheikh/studio/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Collection names a cached collection.
type Collection string

const (
	Members  Collection = "members"
	Payments Collection = "payments"
	Expenses Collection = "expenses"
)

// snapshot holds one cached collection. gen is bumped by every invalidation
// so a load that raced with a mutation is not stored.
type snapshot[T any] struct {
	mu     sync.Mutex
	gen    uint64
	loaded bool
	data   []T
}

func (s *snapshot[T]) get(ctx context.Context, load func(context.Context) ([]T, error)) ([]T, error) {
	s.mu.Lock()
	if s.loaded {
		data := slices.Clone(s.data)
		s.mu.Unlock()
		return data, nil
	}
	gen := s.gen
	s.mu.Unlock()

	data, err := load(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.gen == gen {
		s.data = slices.Clone(data)
		s.loaded = true
	}
	s.mu.Unlock()
	return data, nil
}

func (s *snapshot[T]) invalidate() {
	s.mu.Lock()
	s.gen++
	s.loaded = false
	s.data = nil
	s.mu.Unlock()
}

// Store wraps a storage.Store with cached list snapshots.
type Store struct {
	next     storage.Store
	members  snapshot[models.Member]
	payments snapshot[models.Payment]
	expenses snapshot[models.Expense]

	// OnInvalidate, when set, is called after a collection is invalidated.
	OnInvalidate func(Collection)
}

// New returns a caching Store in front of next.
func New(next storage.Store) *Store {
	return &Store{next: next}
}

// Invalidate drops the cached snapshots of the given collections.
func (s *Store) Invalidate(collections ...Collection) {
	for _, c := range collections {
		switch c {
		case Members:
			s.members.invalidate()
		case Payments:
			s.payments.invalidate()
		case Expenses:
			s.expenses.invalidate()
		}
		slog.Debug("Cache invalidated", "collection", c)
		if s.OnInvalidate != nil {
			s.OnInvalidate(c)
		}
	}
}

// Close closes the underlying store.
func (s *Store) Close() error {
	return s.next.Close()
}

func (s *Store) ListMembers(ctx context.Context) ([]models.Member, error) {
	return s.members.get(ctx, s.next.ListMembers)
}

func (s *Store) GetMember(ctx context.Context, id string) (*models.Member, error) {
	members, err := s.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	return find(members, id, func(m *models.Member) string { return m.ID }, "members")
}

func (s *Store) CreateMember(ctx context.Context, member *models.Member) error {
	// Invalidated on failure too; the backend may have written before failing.
	defer s.Invalidate(Members)
	return s.next.CreateMember(ctx, member)
}

func (s *Store) UpdateMember(ctx context.Context, member *models.Member) error {
	defer s.Invalidate(Members)
	return s.next.UpdateMember(ctx, member)
}

func (s *Store) DeleteMember(ctx context.Context, id string) (int, error) {
	defer s.Invalidate(Members, Payments)
	return s.next.DeleteMember(ctx, id)
}

func (s *Store) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return s.payments.get(ctx, s.next.ListPayments)
}

func (s *Store) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	payments, err := s.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	return find(payments, id, func(p *models.Payment) string { return p.ID }, "payments")
}

func (s *Store) CreatePayment(ctx context.Context, payment *models.Payment) error {
	defer s.Invalidate(Payments)
	return s.next.CreatePayment(ctx, payment)
}

func (s *Store) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	defer s.Invalidate(Payments)
	return s.next.UpdatePayment(ctx, payment)
}

func (s *Store) DeletePayment(ctx context.Context, id string) error {
	defer s.Invalidate(Payments)
	return s.next.DeletePayment(ctx, id)
}

func (s *Store) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.expenses.get(ctx, s.next.ListExpenses)
}

func (s *Store) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return find(expenses, id, func(e *models.Expense) string { return e.ID }, "expenses")
}

func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	defer s.Invalidate(Expenses)
	return s.next.CreateExpense(ctx, expense)
}

func (s *Store) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	defer s.Invalidate(Expenses)
	return s.next.UpdateExpense(ctx, expense)
}

func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	defer s.Invalidate(Expenses)
	return s.next.DeleteExpense(ctx, id)
}

func find[T any](records []T, id string, key func(*T) string, name string) (*T, error) {
	for i := range records {
		if key(&records[i]) == id {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%s %s: %w", name, id, storage.ErrNotFound)
}
