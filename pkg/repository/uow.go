package repository

import "context"

// UnitOfWork binds repositories to a single database transaction.
//
// Do runs fn inside a transaction boundary; the UnitOfWork passed to fn hands
// out repositories bound to that transaction's session. If fn returns an
// error the transaction is rolled back. Settlement relies on this: the
// conditional debit and the status flip to success commit together or not at
// all.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	AccountRepository() (AccountRepository, error)
	TransactionRepository() (TransactionRepository, error)
	UserRepository() (UserRepository, error)
}
