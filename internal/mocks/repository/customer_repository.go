package repository

import (
	"context"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock type for the CustomerRepository interface.
type MockCustomerRepository struct {
	mock.Mock
}

func NewMockCustomerRepository(t mockConstructorTestingT) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Customer)
	}

	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	ret := _m.Called(ctx, cpf)

	return ret.Bool(0), ret.Error(1)
}

func (_m *MockCustomerRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	ret := _m.Called(ctx, phone)

	return ret.Bool(0), ret.Error(1)
}

func (_m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	ret := _m.Called(ctx, customer)

	return ret.Error(0)
}

func (_m *MockCustomerRepository) ListActive(ctx context.Context) ([]*entity.Customer, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Customer)
	}

	return r0, ret.Error(1)
}
