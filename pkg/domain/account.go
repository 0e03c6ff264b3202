// Package domain holds the core entities of payflow: accounts, transactions
// and the errors they surface. Balances and amounts are stored in the
// smallest currency unit (cents) to keep arithmetic exact.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a balance-holding account. Balance is kept in cents and is
// mutated only by successful transaction settlement.
type Account struct {
	ID        uuid.UUID
	Balance   int64
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanDebit reports whether the account balance covers the given amount.
func (a *Account) CanDebit(amount int64) bool {
	return amount > 0 && a.Balance >= amount
}
