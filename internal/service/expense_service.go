package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/azizulsheikh/studio/internal/fund"
	"github.com/azizulsheikh/studio/pkg/api"
)

// ExpenseService implements the Connect ExpenseService.
type ExpenseService struct {
	fund *fund.Service
}

var _ api.ExpenseServiceHandler = (*ExpenseService)(nil)

// NewExpenseService creates a new ExpenseService backed by the fund service.
func NewExpenseService(f *fund.Service) *ExpenseService {
	return &ExpenseService{fund: f}
}

// ListExpenses returns every expense, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received")

	expenses, err := s.fund.ListExpenses(ctx)
	if err != nil {
		return nil, toConnectError("ListExpenses", err)
	}

	slog.Info("ListExpenses successful", "count", len(expenses))
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: expenses}), nil
}

// GetExpense retrieves an expense by ID.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	slog.Info("GetExpense request received", "expense_id", req.Msg.ID)
	if err := requireID("id", req.Msg.ID); err != nil {
		return nil, err
	}

	expense, err := s.fund.GetExpense(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("GetExpense", err)
	}

	return connect.NewResponse(&api.GetExpenseResponse{Expense: expense}), nil
}

// CreateExpense records an expense.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received")

	expense, err := s.fund.CreateExpense(ctx, req.Msg.ExpenseFields)
	if err != nil {
		return nil, toConnectError("CreateExpense", err)
	}

	return connect.NewResponse(&api.CreateExpenseResponse{Expense: expense}), nil
}

// UpdateExpense edits an expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	slog.Info("UpdateExpense request received", "expense_id", req.Msg.ID)
	if err := requireID("id", req.Msg.ID); err != nil {
		return nil, err
	}

	expense, err := s.fund.UpdateExpense(ctx, req.Msg.ID, req.Msg.ExpenseFields)
	if err != nil {
		return nil, toConnectError("UpdateExpense", err)
	}

	return connect.NewResponse(&api.UpdateExpenseResponse{Expense: expense}), nil
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ID)
	if err := requireID("id", req.Msg.ID); err != nil {
		return nil, err
	}

	if err := s.fund.DeleteExpense(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("DeleteExpense", err)
	}

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}
