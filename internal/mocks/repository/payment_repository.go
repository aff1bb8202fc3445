package repository

import (
	"context"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPaymentRepository is a mock type for the PaymentRepository interface.
type MockPaymentRepository struct {
	mock.Mock
}

func NewMockPaymentRepository(t mockConstructorTestingT) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockPaymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *entity.Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Payment)
	}

	return r0, ret.Error(1)
}

func (_m *MockPaymentRepository) ExistsByOrderID(ctx context.Context, orderID uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, orderID)

	return ret.Bool(0), ret.Error(1)
}

func (_m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	ret := _m.Called(ctx, payment)

	return ret.Error(0)
}
