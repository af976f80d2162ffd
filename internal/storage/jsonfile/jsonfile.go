// Package jsonfile provides a storage.Store backed by flat JSON array files,
// one file per collection (members.json, payments.json, expenses.json).
package jsonfile

import (
	"context"
	"fmt"
	"os"

	"github.com/azizulsheikh/studio/internal/models"
	"github.com/azizulsheikh/studio/internal/storage"
)

// Ensure JSONStore implements storage.Store
var _ storage.Store = (*JSONStore)(nil)

// JSONStore implements storage.Store using one pretty-printed JSON file per
// collection inside a data directory.
type JSONStore struct {
	dir      string
	members  *collection[models.Member]
	payments *collection[models.Payment]
	expenses *collection[models.Expense]
}

// New creates a JSONStore rooted at dir, creating the directory if needed.
// Collection files are created lazily on first write.
func New(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &JSONStore{
		dir:      dir,
		members:  newCollection(dir, "members", func(m *models.Member) string { return m.ID }),
		payments: newCollection(dir, "payments", func(p *models.Payment) string { return p.ID }),
		expenses: newCollection(dir, "expenses", func(e *models.Expense) string { return e.ID }),
	}, nil
}

// Dir returns the data directory.
func (s *JSONStore) Dir() string {
	return s.dir
}

// Close is a no-op; every operation opens and closes its own file.
func (s *JSONStore) Close() error {
	return nil
}

// ListMembers returns all members in file order.
func (s *JSONStore) ListMembers(ctx context.Context) ([]models.Member, error) {
	return s.members.list(ctx)
}

// GetMember retrieves a member by ID.
func (s *JSONStore) GetMember(ctx context.Context, id string) (*models.Member, error) {
	return s.members.get(ctx, id)
}

// CreateMember appends a member.
func (s *JSONStore) CreateMember(ctx context.Context, member *models.Member) error {
	return s.members.insert(ctx, *member)
}

// UpdateMember replaces the stored member with the same ID.
func (s *JSONStore) UpdateMember(ctx context.Context, member *models.Member) error {
	return s.members.replace(ctx, *member)
}

// DeleteMember removes a member and cascades to its payments.
//
// Locks are taken payments first, then members, everywhere both are held.
// Payments are written before the member so an interrupted delete can only
// leave a member without payments, never payments without a member.
func (s *JSONStore) DeleteMember(ctx context.Context, id string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.payments.mu.Lock()
	defer s.payments.mu.Unlock()
	s.members.mu.Lock()
	defer s.members.mu.Unlock()

	members, err := s.members.read()
	if err != nil {
		return 0, err
	}
	i := s.members.indexOf(members, id)
	if i < 0 {
		return 0, fmt.Errorf("members %s: %w", id, storage.ErrNotFound)
	}

	payments, err := s.payments.read()
	if err != nil {
		return 0, err
	}
	kept := payments[:0:0]
	for _, p := range payments {
		if p.MemberID != id {
			kept = append(kept, p)
		}
	}
	removed := len(payments) - len(kept)
	if removed > 0 {
		if err := s.payments.write(kept); err != nil {
			return 0, err
		}
	}

	members = append(members[:i], members[i+1:]...)
	if err := s.members.write(members); err != nil {
		return removed, err
	}
	return removed, nil
}

// ListPayments returns all payments in file order.
func (s *JSONStore) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return s.payments.list(ctx)
}

// GetPayment retrieves a payment by ID.
func (s *JSONStore) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	return s.payments.get(ctx, id)
}

// CreatePayment appends a payment for an existing member.
func (s *JSONStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return s.mutatePayments(ctx, payment.MemberID, func(payments []models.Payment) ([]models.Payment, error) {
		if s.payments.indexOf(payments, payment.ID) >= 0 {
			return nil, fmt.Errorf("payments %s already exists", payment.ID)
		}
		return append(payments, *payment), nil
	})
}

// UpdatePayment replaces the stored payment with the same ID.
func (s *JSONStore) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	return s.mutatePayments(ctx, payment.MemberID, func(payments []models.Payment) ([]models.Payment, error) {
		i := s.payments.indexOf(payments, payment.ID)
		if i < 0 {
			return nil, fmt.Errorf("payments %s: %w", payment.ID, storage.ErrNotFound)
		}
		payments[i] = *payment
		return payments, nil
	})
}

// mutatePayments applies fn to the payments and writes the result only if
// memberID is a stored member. Both locks are held throughout, payments
// first, so DeleteMember cannot remove the member between check and write.
func (s *JSONStore) mutatePayments(ctx context.Context, memberID string, fn func([]models.Payment) ([]models.Payment, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.payments.mu.Lock()
	defer s.payments.mu.Unlock()
	s.members.mu.Lock()
	defer s.members.mu.Unlock()

	payments, err := s.payments.read()
	if err != nil {
		return err
	}
	updated, err := fn(payments)
	if err != nil {
		return err
	}

	members, err := s.members.read()
	if err != nil {
		return err
	}
	if s.members.indexOf(members, memberID) < 0 {
		return fmt.Errorf("members %s: %w", memberID, storage.ErrMemberMissing)
	}
	return s.payments.write(updated)
}

// DeletePayment removes a payment by ID.
func (s *JSONStore) DeletePayment(ctx context.Context, id string) error {
	return s.payments.remove(ctx, id)
}

// ListExpenses returns all expenses in file order.
func (s *JSONStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.expenses.list(ctx)
}

// GetExpense retrieves an expense by ID.
func (s *JSONStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	return s.expenses.get(ctx, id)
}

// CreateExpense appends an expense.
func (s *JSONStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return s.expenses.insert(ctx, *expense)
}

// UpdateExpense replaces the stored expense with the same ID.
func (s *JSONStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	return s.expenses.replace(ctx, *expense)
}

// DeleteExpense removes an expense by ID.
func (s *JSONStore) DeleteExpense(ctx context.Context, id string) error {
	return s.expenses.remove(ctx, id)
}

// ReplaceMembers overwrites the whole members collection. Used for imports
// and tests; normal mutations go through the per-record methods.
func (s *JSONStore) ReplaceMembers(ctx context.Context, members []models.Member) error {
	return s.members.replaceAll(ctx, members)
}

// ReplacePayments overwrites the whole payments collection.
func (s *JSONStore) ReplacePayments(ctx context.Context, payments []models.Payment) error {
	return s.payments.replaceAll(ctx, payments)
}

// ReplaceExpenses overwrites the whole expenses collection.
func (s *JSONStore) ReplaceExpenses(ctx context.Context, expenses []models.Expense) error {
	return s.expenses.replaceAll(ctx, expenses)
}
