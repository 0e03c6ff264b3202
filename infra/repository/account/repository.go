package account

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

// New creates an account repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.AccountRepository {
	return &repo{db: db}
}

// Get implements repository.AccountRepository.
func (r *repo) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).First(&acct, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// Create implements repository.AccountRepository.
func (r *repo) Create(ctx context.Context, create dto.AccountCreate) error {
	acct := Account{
		ID:       create.ID,
		Balance:  create.Balance,
		Currency: create.Currency,
	}
	return r.db.WithContext(ctx).Create(&acct).Error
}

// DebitIf implements repository.AccountRepository. The balance guard lives
// in the WHERE clause, so two concurrent debits can never drive the balance
// negative: the second one matches zero rows.
func (r *repo) DebitIf(ctx context.Context, id uuid.UUID, amount int64) error {
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ? AND balance >= ?", id, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInsufficientBalance
	}
	return nil
}

func mapModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:        acct.ID,
		Balance:   acct.Balance,
		Currency:  acct.Currency,
		CreatedAt: acct.CreatedAt,
	}
}
