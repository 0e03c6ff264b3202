package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransactionRead is a read-optimized view of a transaction for API responses.
// Amount is in major units (dollars); persistence works in cents.
type TransactionRead struct {
	ID              uuid.UUID  `json:"id"`
	Type            string     `json:"type"`
	Amount          float64    `json:"amount"`
	ReceiverAccount string     `json:"receiver_account,omitempty"`
	AccountID       uuid.UUID  `json:"accountId"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_time"`
	CompletedAt     *time.Time `json:"completed_time,omitempty"`
}

// TransactionCreate carries the data needed to persist a new transaction.
type TransactionCreate struct {
	ID              uuid.UUID
	Type            string
	Amount          int64
	ReceiverAccount string
	AccountID       uuid.UUID
	Status          string
}

// TransactionUpdate is a partial update applied by identifier.
type TransactionUpdate struct {
	Status      *string
	CompletedAt *time.Time
}
