package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType enumerates the supported transaction kinds.
type TransactionType string

const (
	// TransactionTypeSend moves funds to a receiver account.
	TransactionTypeSend TransactionType = "send"
	// TransactionTypeWithdraw moves funds out of the system.
	TransactionTypeWithdraw TransactionType = "withdraw"
)

// TransactionStatus enumerates the transaction lifecycle states.
type TransactionStatus string

const (
	// TransactionStatusPending is the state a transaction is created in.
	TransactionStatusPending TransactionStatus = "pending"
	// TransactionStatusSuccess is the terminal state after settlement.
	TransactionStatusSuccess TransactionStatus = "success"
	// TransactionStatusFailed is the terminal state when processing or the
	// settling debit fails. The account is left untouched.
	TransactionStatusFailed TransactionStatus = "failed"
)

// Transaction is a single send or withdraw request against an account.
// ReceiverAccount is empty for withdrawals. CompletedAt is set only when the
// transaction reaches a terminal state.
type Transaction struct {
	ID              uuid.UUID
	Type            TransactionType
	Amount          int64
	ReceiverAccount string
	AccountID       uuid.UUID
	Status          TransactionStatus
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

// NewTransaction builds a pending transaction with a fresh identifier.
func NewTransaction(
	txType TransactionType,
	accountID uuid.UUID,
	amount int64,
	receiverAccount string,
) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrTransactionAmountMustBePositive
	}
	return &Transaction{
		ID:              uuid.New(),
		Type:            txType,
		Amount:          amount,
		ReceiverAccount: receiverAccount,
		AccountID:       accountID,
		Status:          TransactionStatusPending,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// Terminal reports whether the status is success or failed.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusSuccess || s == TransactionStatusFailed
}
