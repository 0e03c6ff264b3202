package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountRead is a read-optimized view of an account for queries and API responses.
type AccountRead struct {
	ID        uuid.UUID `json:"id"`
	Balance   int64     `json:"-"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountCreate carries the data needed to create a new account.
type AccountCreate struct {
	ID       uuid.UUID
	Balance  int64
	Currency string
}
