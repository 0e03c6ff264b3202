package user

import (
	"context"

	"github.com/amirasaad/payflow/pkg/dto"
	"github.com/amirasaad/payflow/pkg/repository"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New creates a user repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.UserRepository {
	return &repo{db: db}
}

// Create implements repository.UserRepository. gorm fills the timestamp
// fields on insert, so the returned read reflects the stored row.
func (r *repo) Create(ctx context.Context, create dto.UserCreate) (*dto.UserRead, error) {
	u := User{
		ID:             create.ID,
		Email:          create.Email,
		HashedPassword: create.HashedPassword,
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, err
	}
	return &dto.UserRead{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}, nil
}

// GetByEmail implements repository.UserRepository.
func (r *repo) GetByEmail(ctx context.Context, email string) (*dto.UserRead, string, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, "", err
	}
	return &dto.UserRead{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}, u.HashedPassword, nil
}
