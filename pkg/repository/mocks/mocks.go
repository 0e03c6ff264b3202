// Package mocks provides testify-based test doubles for the repository
// contracts. They are shared by service and webapi tests.
package mocks

import (
	"context"

	"github.com/amirasaad/payflow/pkg/dto"
	"github.com/amirasaad/payflow/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// AccountRepository is a mock of repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	args := m.Called(ctx, id)
	if acct := args.Get(0); acct != nil {
		return acct.(*dto.AccountRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *AccountRepository) DebitIf(ctx context.Context, id uuid.UUID, amount int64) error {
	return m.Called(ctx, id, amount).Error(0)
}

// TransactionRepository is a mock of repository.TransactionRepository.
type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	args := m.Called(ctx, id)
	if tx := args.Get(0); tx != nil {
		return tx.(*dto.TransactionRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TransactionRepository) Create(ctx context.Context, create dto.TransactionCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *TransactionRepository) Update(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

// UserRepository is a mock of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, create dto.UserCreate) (*dto.UserRead, error) {
	args := m.Called(ctx, create)
	if u := args.Get(0); u != nil {
		return u.(*dto.UserRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, string, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*dto.UserRead), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

// UnitOfWork is a mock of repository.UnitOfWork. Do runs fn against the mock
// itself so tests wire repositories once.
type UnitOfWork struct {
	mock.Mock
	Accounts     *AccountRepository
	Transactions *TransactionRepository
	Users        *UserRepository
}

// NewUnitOfWork returns a UnitOfWork with all repository mocks attached.
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		Accounts:     &AccountRepository{},
		Transactions: &TransactionRepository{},
		Users:        &UserRepository{},
	}
}

func (m *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(m)
}

func (m *UnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	return m.Accounts, nil
}

func (m *UnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	return m.Transactions, nil
}

func (m *UnitOfWork) UserRepository() (repository.UserRepository, error) {
	return m.Users, nil
}

// AssertExpectations asserts expectations on all attached mocks.
func (m *UnitOfWork) AssertExpectations(t mock.TestingT) bool {
	ok := m.Accounts.AssertExpectations(t)
	ok = m.Transactions.AssertExpectations(t) && ok
	return m.Users.AssertExpectations(t) && ok
}
