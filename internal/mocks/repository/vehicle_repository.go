package repository

import (
	"context"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVehicleRepository is a mock type for the VehicleRepository interface.
type MockVehicleRepository struct {
	mock.Mock
}

func NewMockVehicleRepository(t mockConstructorTestingT) *MockVehicleRepository {
	m := &MockVehicleRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Vehicle
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Vehicle)
	}

	return r0, ret.Error(1)
}

func (_m *MockVehicleRepository) ExistsByPlate(ctx context.Context, plate string) (bool, error) {
	ret := _m.Called(ctx, plate)

	return ret.Bool(0), ret.Error(1)
}

func (_m *MockVehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	ret := _m.Called(ctx, vehicle)

	return ret.Error(0)
}

func (_m *MockVehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	ret := _m.Called(ctx, vehicle)

	return ret.Error(0)
}

func (_m *MockVehicleRepository) List(ctx context.Context) ([]*entity.Vehicle, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Vehicle
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Vehicle)
	}

	return r0, ret.Error(1)
}
