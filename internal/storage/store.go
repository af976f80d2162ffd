// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/azizulsheikh/studio/internal/models"
)

// ErrNotFound is returned (wrapped) when a record id has no match.
var ErrNotFound = errors.New("record not found")

// ErrMemberMissing is returned (wrapped) when a payment is written for a
// member id that is not stored.
var ErrMemberMissing = errors.New("referenced member does not exist")

// Store defines the interface for fund record storage operations.
// This abstraction allows swapping storage backends (JSON files, a cache
// decorator, a database) without changing the fund service.
//
// Create methods expect the record's ID to be set by the caller.
// Update and Delete methods return an error wrapping ErrNotFound for unknown ids.
type Store interface {
	// ListMembers returns every member in stored order. Empty, not an error,
	// when nothing has been stored yet.
	ListMembers(ctx context.Context) ([]models.Member, error)
	GetMember(ctx context.Context, id string) (*models.Member, error)
	CreateMember(ctx context.Context, member *models.Member) error
	UpdateMember(ctx context.Context, member *models.Member) error

	// DeleteMember removes the member and every payment referencing it.
	// It returns the number of payments removed.
	DeleteMember(ctx context.Context, id string) (int, error)

	ListPayments(ctx context.Context) ([]models.Payment, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)

	// CreatePayment and UpdatePayment fail with ErrMemberMissing when
	// payment.MemberID names no member. The check and the write are atomic
	// with respect to DeleteMember.
	CreatePayment(ctx context.Context, payment *models.Payment) error
	UpdatePayment(ctx context.Context, payment *models.Payment) error

	DeletePayment(ctx context.Context, id string) error

	ListExpenses(ctx context.Context) ([]models.Expense, error)
	GetExpense(ctx context.Context, id string) (*models.Expense, error)
	CreateExpense(ctx context.Context, expense *models.Expense) error
	UpdateExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
