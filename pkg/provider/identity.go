// Package provider defines the contracts for external collaborators the
// services delegate to. Implementations live under infra/provider.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirasaad/payflow/pkg/domain"
	"github.com/amirasaad/payflow/pkg/dto"
)

// Identity authenticates callers and issues bearer credentials. Both
// operations may return an *IdentityError wrapping domain.ErrProvider when
// the provider rejects the request.
type Identity interface {
	// SignUp registers a new user and returns the created user object.
	SignUp(ctx context.Context, email, password string) (*dto.UserRead, error)
	// SignIn verifies credentials and returns an access token.
	SignIn(ctx context.Context, email, password string) (string, error)
}

// IdentityError carries the provider's rejection message. It unwraps to
// domain.ErrProvider so handlers can branch without knowing the provider.
type IdentityError struct {
	Message string
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("identity provider: %s", e.Message)
}

func (e *IdentityError) Unwrap() error {
	return domain.ErrProvider
}

// AsIdentityError returns the IdentityError in err's chain, if any.
func AsIdentityError(err error) (*IdentityError, bool) {
	var ie *IdentityError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
