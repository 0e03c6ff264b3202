// Package repository implements pkg/repository on top of gorm.
package repository

import (
	"context"

	accountrepo "github.com/amirasaad/payflow/infra/repository/account"
	transactionrepo "github.com/amirasaad/payflow/infra/repository/transaction"
	userrepo "github.com/amirasaad/payflow/infra/repository/user"
	"github.com/amirasaad/payflow/pkg/repository"
	"gorm.io/gorm"
)

type uow struct {
	db *gorm.DB
}

// NewUoW creates a UnitOfWork bound to the given gorm connection.
// Repositories handed out by the base UnitOfWork run on the connection
// directly; inside Do they share one database transaction.
func NewUoW(db *gorm.DB) repository.UnitOfWork {
	return &uow{db: db}
}

// Do implements repository.UnitOfWork.
func (u *uow) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&uow{db: tx})
	})
}

// AccountRepository implements repository.UnitOfWork.
func (u *uow) AccountRepository() (repository.AccountRepository, error) {
	return accountrepo.New(u.db), nil
}

// TransactionRepository implements repository.UnitOfWork.
func (u *uow) TransactionRepository() (repository.TransactionRepository, error) {
	return transactionrepo.New(u.db), nil
}

// UserRepository implements repository.UnitOfWork.
func (u *uow) UserRepository() (repository.UserRepository, error) {
	return userrepo.New(u.db), nil
}
