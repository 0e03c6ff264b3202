package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents a persisted transaction record.
type Transaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Type            string    `gorm:"type:varchar(16);not null"`
	Amount          int64     `gorm:"not null"`
	ReceiverAccount string    `gorm:"type:varchar(64);column:receiver_account"`
	AccountID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Status          string    `gorm:"type:varchar(32);not null"`
	CreatedAt       time.Time
	CompletedAt     *time.Time `gorm:"column:completed_time"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
