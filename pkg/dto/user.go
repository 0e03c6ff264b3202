package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserRead is a read-optimized view of a user as returned by the identity
// provider. The password hash never leaves the provider.
type UserRead struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreate carries the data needed to register a user with the local
// identity strategy.
type UserCreate struct {
	ID             uuid.UUID
	Email          string
	HashedPassword string
}
