package mocks

import (
	"context"

	"github.com/you/fleetsvc/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc            func(ctx context.Context, user *domain.User) error
	FindByEmailFunc       func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc          func(ctx context.Context, id uint) (*domain.User, error)
	ListFunc              func(ctx context.Context) ([]domain.User, error)
	UpdateProfileFunc     func(ctx context.Context, id uint, nombre, email string) error
	DeleteFunc            func(ctx context.Context, id uint) error
	FindRolesByUserIDFunc func(ctx context.Context, userID uint) ([]string, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// List lists all users
func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// UpdateProfile updates a user's nombre and email
func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uint, nombre, email string) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, nombre, email)
	}
	// Default behavior: success
	return nil
}

// Delete removes a user by ID
func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// FindRolesByUserID fetches the roles granted to a user
func (m *MockUserRepository) FindRolesByUserID(ctx context.Context, userID uint) ([]string, error) {
	if m.FindRolesByUserIDFunc != nil {
		return m.FindRolesByUserIDFunc(ctx, userID)
	}
	// Default behavior: no roles
	return []string{}, nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
