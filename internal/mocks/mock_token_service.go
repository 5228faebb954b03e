package mocks

import (
	"time"

	"github.com/you/fleetsvc/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	IssueFunc    func(userID uint) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue mints a token for a user
func (m *MockTokenService) Issue(userID uint) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID)
	}
	// Default behavior: opaque placeholder
	return "mock-token", nil
}

// Validate checks a token and yields its claims
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	if token == "mock-token" {
		now := time.Now()
		return &domain.TokenClaims{
			UserID:    1,
			JTI:       "mock-jti",
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(4 * time.Hour).Unix(),
		}, nil
	}
	// Default behavior: anything else is invalid
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
