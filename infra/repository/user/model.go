package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a locally stored identity user. Only the local identity
// strategy persists users; the remote strategy keeps no state here.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
