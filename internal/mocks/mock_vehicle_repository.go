package mocks

import (
	"context"

	"github.com/you/fleetsvc/domain"
)

// MockVehicleRepository implements domain.VehicleRepository interface for testing
type MockVehicleRepository struct {
	ListFunc     func(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error)
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Vehicle, error)
	CreateFunc   func(ctx context.Context, vehicle *domain.Vehicle) error
	UpdateFunc   func(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

// NewMockVehicleRepository creates a new MockVehicleRepository with default behaviors
func NewMockVehicleRepository() *MockVehicleRepository {
	return &MockVehicleRepository{}
}

// List lists vehicles matching the filter
func (m *MockVehicleRepository) List(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	// Default behavior: empty
	return nil, nil
}

// FindByID finds a vehicle by ID
func (m *MockVehicleRepository) FindByID(ctx context.Context, id uint) (*domain.Vehicle, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrVehicleNotFound
}

// Create creates a new vehicle
func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, vehicle)
	}
	// Default behavior: success with generated id
	vehicle.ID = 1
	return nil
}

// Update updates an existing vehicle
func (m *MockVehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, vehicle)
	}
	// Default behavior: success
	return nil
}

// Delete removes a vehicle by ID
func (m *MockVehicleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.VehicleRepository = (*MockVehicleRepository)(nil)
