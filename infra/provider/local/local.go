// Package local implements the identity provider contract with a users
// table and self-issued JWTs. It exists for development and tests, where no
// GoTrue endpoint is available, and is selected with IDENTITY_STRATEGY=local.
package local

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/payflow/pkg/config"
	"github.com/amirasaad/payflow/pkg/dto"
	"github.com/amirasaad/payflow/pkg/provider"
	"github.com/amirasaad/payflow/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Strategy is a self-contained identity provider.
type Strategy struct {
	uow    repository.UnitOfWork
	jwtCfg config.Jwt
	logger *slog.Logger
}

// New creates a local identity strategy.
func New(uow repository.UnitOfWork, jwtCfg config.Jwt, logger *slog.Logger) *Strategy {
	return &Strategy{uow: uow, jwtCfg: jwtCfg, logger: logger}
}

// SignUp implements provider.Identity.
func (s *Strategy) SignUp(ctx context.Context, email, password string) (*dto.UserRead, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	create := dto.UserCreate{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: string(hash),
	}
	var user *dto.UserRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		user, err = users.Create(ctx, create)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &provider.IdentityError{Message: "User already registered"}
		}
		return nil, err
	}
	s.logger.Info("user registered", "userID", user.ID)
	return user, nil
}

// SignIn implements provider.Identity.
func (s *Strategy) SignIn(ctx context.Context, email, password string) (string, error) {
	users, err := s.uow.UserRepository()
	if err != nil {
		return "", err
	}
	user, hash, err := users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a bad password to prevent user enumeration.
			return "", &provider.IdentityError{Message: "Invalid login credentials"}
		}
		return "", err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", &provider.IdentityError{Message: "Invalid login credentials"}
	}
	return s.generateToken(user)
}

func (s *Strategy) generateToken(user *dto.UserRead) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.jwtCfg.Expiry).Unix(),
	})
	return token.SignedString([]byte(s.jwtCfg.Secret))
}
