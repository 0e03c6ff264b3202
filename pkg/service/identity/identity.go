// Package identity provides registration and login on top of a pluggable
// identity provider.
package identity

import (
	"context"
	"log/slog"

	"github.com/amirasaad/payflow/pkg/dto"
	"github.com/amirasaad/payflow/pkg/provider"
)

// Service delegates credential handling to the configured identity provider.
type Service struct {
	identity provider.Identity
	logger   *slog.Logger
}

// New creates an identity Service.
func New(identity provider.Identity, logger *slog.Logger) *Service {
	return &Service{identity: identity, logger: logger}
}

// Register creates a new user with the identity provider.
func (s *Service) Register(ctx context.Context, email, password string) (user *dto.UserRead, err error) {
	log := s.logger.With("email", email)
	log.Info("registering user")
	defer func() {
		if err != nil {
			log.Warn("registration failed", "error", err)
			return
		}
		log.Info("user registered", "userID", user.ID)
	}()
	return s.identity.SignUp(ctx, email, password)
}

// Login verifies credentials and returns an access token.
func (s *Service) Login(ctx context.Context, email, password string) (token string, err error) {
	log := s.logger.With("email", email)
	log.Info("login attempt")
	defer func() {
		if err != nil {
			log.Warn("login failed", "error", err)
			return
		}
		log.Info("login succeeded")
	}()
	return s.identity.SignIn(ctx, email, password)
}
