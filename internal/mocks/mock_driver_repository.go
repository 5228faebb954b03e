package mocks

import (
	"context"

	"github.com/you/fleetsvc/domain"
)

// MockDriverRepository implements domain.DriverRepository interface for testing
type MockDriverRepository struct {
	ListFunc     func(ctx context.Context) ([]domain.Driver, error)
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Driver, error)
	CreateFunc   func(ctx context.Context, driver *domain.Driver) error
	UpdateFunc   func(ctx context.Context, driver *domain.Driver) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

// NewMockDriverRepository creates a new MockDriverRepository with default behaviors
func NewMockDriverRepository() *MockDriverRepository {
	return &MockDriverRepository{}
}

// List lists all drivers
func (m *MockDriverRepository) List(ctx context.Context) ([]domain.Driver, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// FindByID finds a driver by ID
func (m *MockDriverRepository) FindByID(ctx context.Context, id uint) (*domain.Driver, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrDriverNotFound
}

// Create creates a new driver
func (m *MockDriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, driver)
	}
	// Default behavior: success with generated id
	driver.ID = 1
	return nil
}

// Update updates an existing driver
func (m *MockDriverRepository) Update(ctx context.Context, driver *domain.Driver) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, driver)
	}
	// Default behavior: success
	return nil
}

// Delete removes a driver by ID
func (m *MockDriverRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.DriverRepository = (*MockDriverRepository)(nil)
