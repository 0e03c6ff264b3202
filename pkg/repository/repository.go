// Package repository defines the persistence contracts consumed by the
// service layer. Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/amirasaad/payflow/pkg/dto"
	"github.com/google/uuid"
)

// AccountRepository provides access to account records.
type AccountRepository interface {
	// Get returns the account by id, or domain.ErrAccountNotFound.
	Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)
	// Create persists a new account.
	Create(ctx context.Context, create dto.AccountCreate) error
	// DebitIf atomically decrements the balance by amount if the balance
	// covers it. Returns domain.ErrInsufficientBalance when it does not.
	DebitIf(ctx context.Context, id uuid.UUID, amount int64) error
}

// TransactionRepository provides access to transaction records.
type TransactionRepository interface {
	// Get returns the transaction by id, or domain.ErrTransactionNotFound.
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)
	// Create persists a new transaction.
	Create(ctx context.Context, create dto.TransactionCreate) error
	// Update applies a partial update by id.
	Update(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error
}

// UserRepository provides access to locally stored identity users. Only the
// local identity strategy uses it; the remote strategy keeps no user state.
type UserRepository interface {
	// Create persists a new user and returns it as stored, timestamps included.
	Create(ctx context.Context, create dto.UserCreate) (*dto.UserRead, error)
	// GetByEmail returns the user and password hash, or gorm.ErrRecordNotFound.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, string, error)
}
