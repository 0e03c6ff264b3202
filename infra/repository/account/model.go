package account

import (
	"time"

	"github.com/google/uuid"
)

// Account represents an account record in the database.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Balance   int64     `gorm:"not null"`
	Currency  string    `gorm:"type:varchar(3);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
