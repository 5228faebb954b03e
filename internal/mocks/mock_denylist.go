package mocks

import (
	"context"
	"time"

	"github.com/you/fleetsvc/domain"
)

// MockTokenDenylist implements domain.TokenDenylist interface for testing
type MockTokenDenylist struct {
	RevokeFunc    func(ctx context.Context, jti string, until time.Time) error
	IsRevokedFunc func(ctx context.Context, jti string) (bool, error)
}

// NewMockTokenDenylist creates a new MockTokenDenylist with default behaviors
func NewMockTokenDenylist() *MockTokenDenylist {
	return &MockTokenDenylist{}
}

// Revoke denylists a token id
func (m *MockTokenDenylist) Revoke(ctx context.Context, jti string, until time.Time) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, jti, until)
	}
	// Default behavior: success
	return nil
}

// IsRevoked reports whether a token id is denylisted
func (m *MockTokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if m.IsRevokedFunc != nil {
		return m.IsRevokedFunc(ctx, jti)
	}
	// Default behavior: not revoked
	return false, nil
}

// Compile-time interface compliance verification
var _ domain.TokenDenylist = (*MockTokenDenylist)(nil)
