package transaction

import (
	"context"
	"errors"

	"github.com/amirasaad/payflow/pkg/domain"
	"github.com/amirasaad/payflow/pkg/dto"
	"github.com/amirasaad/payflow/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New creates a transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.TransactionRepository {
	return &repo{db: db}
}

// Get implements repository.TransactionRepository.
func (r *repo) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	var tx Transaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&tx), nil
}

// Create implements repository.TransactionRepository.
func (r *repo) Create(ctx context.Context, create dto.TransactionCreate) error {
	tx := Transaction{
		ID:              create.ID,
		Type:            create.Type,
		Amount:          create.Amount,
		ReceiverAccount: create.ReceiverAccount,
		AccountID:       create.AccountID,
		Status:          create.Status,
	}
	return r.db.WithContext(ctx).Create(&tx).Error
}

// Update implements repository.TransactionRepository.
func (r *repo) Update(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error {
	updates := make(map[string]any)
	if update.Status != nil {
		updates["status"] = *update.Status
	}
	if update.CompletedAt != nil {
		updates["completed_time"] = *update.CompletedAt
	}
	if len(updates) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&Transaction{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func mapModelToDTO(tx *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:              tx.ID,
		Type:            tx.Type,
		Amount:          domain.FromCents(tx.Amount),
		ReceiverAccount: tx.ReceiverAccount,
		AccountID:       tx.AccountID,
		Status:          tx.Status,
		CreatedAt:       tx.CreatedAt,
		CompletedAt:     tx.CompletedAt,
	}
}
