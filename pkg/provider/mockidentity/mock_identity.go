// Package mockidentity provides a testify-based Identity double for tests.
package mockidentity

import (
	"context"

	"github.com/amirasaad/payflow/pkg/dto"
	"github.com/stretchr/testify/mock"
)

// MockIdentity is a mock of provider.Identity.
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) SignUp(ctx context.Context, email, password string) (*dto.UserRead, error) {
	args := m.Called(ctx, email, password)
	if u := args.Get(0); u != nil {
		return u.(*dto.UserRead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIdentity) SignIn(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}
