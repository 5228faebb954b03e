package mocks

import (
	"context"

	"github.com/you/fleetsvc/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc      func(ctx context.Context, nombre, email, password string) (*domain.User, error)
	LoginFunc         func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	UpdateProfileFunc func(ctx context.Context, id uint, nombre, email string) error
	LogoutFunc        func(ctx context.Context, claims *domain.TokenClaims) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new account
func (m *MockAuthService) Register(ctx context.Context, nombre, email, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, nombre, email, password)
	}
	// Default behavior: return a user with ID 1
	return &domain.User{ID: 1, Nombre: nombre, Email: email}, nil
}

// Login authenticates credentials
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: successful login with a fixed token
	return &domain.AuthResult{
		User:  &domain.User{ID: 1, Email: email},
		Token: "mock-token",
	}, nil
}

// UpdateProfile edits the account profile
func (m *MockAuthService) UpdateProfile(ctx context.Context, id uint, nombre, email string) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, nombre, email)
	}
	return nil
}

// Logout invalidates the presented token
func (m *MockAuthService) Logout(ctx context.Context, claims *domain.TokenClaims) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, claims)
	}
	return nil
}

// Verify interface compliance
var _ domain.AuthService = (*MockAuthService)(nil)
