package mocks

import (
	"context"

	"github.com/you/fleetsvc/domain"
)

// MockTripRepository implements domain.TripRepository interface for testing
type MockTripRepository struct {
	ListFunc     func(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error)
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Trip, error)
	CreateFunc   func(ctx context.Context, trip *domain.Trip) error
	UpdateFunc   func(ctx context.Context, trip *domain.Trip) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

// NewMockTripRepository creates a new MockTripRepository with default behaviors
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{}
}

// List lists trips matching the filter
func (m *MockTripRepository) List(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	// Default behavior: empty
	return nil, nil
}

// FindByID finds a trip by ID
func (m *MockTripRepository) FindByID(ctx context.Context, id uint) (*domain.Trip, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrTripNotFound
}

// Create creates a new trip
func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, trip)
	}
	// Default behavior: success with generated id
	trip.ID = 1
	return nil
}

// Update updates an existing trip
func (m *MockTripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, trip)
	}
	// Default behavior: success
	return nil
}

// Delete removes a trip by ID
func (m *MockTripRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.TripRepository = (*MockTripRepository)(nil)
