package repository

import (
	"context"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSalesOrderRepository is a mock type for the SalesOrderRepository interface.
type MockSalesOrderRepository struct {
	mock.Mock
}

func NewMockSalesOrderRepository(t mockConstructorTestingT) *MockSalesOrderRepository {
	m := &MockSalesOrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.SalesOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.SalesOrder)
	}

	return r0, ret.Error(1)
}

func (_m *MockSalesOrderRepository) Create(ctx context.Context, order *entity.SalesOrder) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

func (_m *MockSalesOrderRepository) Update(ctx context.Context, order *entity.SalesOrder) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

func (_m *MockSalesOrderRepository) CountBySellerID(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, sellerID)

	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockSalesOrderRepository) ListBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.SalesOrder, error) {
	ret := _m.Called(ctx, sellerID)

	var r0 []*entity.SalesOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.SalesOrder)
	}

	return r0, ret.Error(1)
}

func (_m *MockSalesOrderRepository) ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.SalesOrder, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*entity.SalesOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.SalesOrder)
	}

	return r0, ret.Error(1)
}

func (_m *MockSalesOrderRepository) ExistsActiveByVehicleID(ctx context.Context, vehicleID uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, vehicleID)

	return ret.Bool(0), ret.Error(1)
}

func (_m *MockSalesOrderRepository) List(ctx context.Context) ([]*entity.SalesOrder, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.SalesOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.SalesOrder)
	}

	return r0, ret.Error(1)
}
