package fund

import (
	"context"
	"log/slog"

	"github.com/azizulsheikh/studio/internal/audit"
	"github.com/azizulsheikh/studio/internal/calculator"
	"github.com/azizulsheikh/studio/internal/models"
)

// ListExpenses returns all expenses, newest first.
func (s *Service) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	calculator.SortExpensesNewestFirst(expenses)
	return expenses, nil
}

// GetExpense returns an expense or an error wrapping storage.ErrNotFound.
func (s *Service) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	return s.store.GetExpense(ctx, id)
}

// CreateExpense validates fields and stores a new expense. A zero date means now.
func (s *Service) CreateExpense(ctx context.Context, fields models.ExpenseFields) (*models.Expense, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		ID:          s.newID(),
		Description: fields.Description,
		Amount:      fields.Amount,
		Date:        fields.Date,
	}
	if expense.Date.IsZero() {
		expense.Date = s.now()
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	s.record(ctx, "expenses", "create", audit.ExpenseCreated, expense)
	slog.Info("Expense created", "expense_id", expense.ID, "amount", expense.Amount.String())
	return expense, nil
}

// UpdateExpense replaces an expense's fields. A zero date keeps the stored one.
func (s *Service) UpdateExpense(ctx context.Context, id string, fields models.ExpenseFields) (*models.Expense, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Description = fields.Description
	updated.Amount = fields.Amount
	if !fields.Date.IsZero() {
		updated.Date = fields.Date
	}

	if err := s.store.UpdateExpense(ctx, &updated); err != nil {
		return nil, err
	}

	s.record(ctx, "expenses", "update", audit.ExpenseUpdated, &updated)
	slog.Info("Expense updated", "expense_id", id)
	return &updated, nil
}

// DeleteExpense removes an expense.
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return err
	}

	s.record(ctx, "expenses", "delete", audit.ExpenseDeleted, map[string]string{"id": id})
	slog.Info("Expense deleted", "expense_id", id)
	return nil
}
