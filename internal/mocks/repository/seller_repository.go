package repository

import (
	"context"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSellerRepository is a mock type for the SellerRepository interface.
type MockSellerRepository struct {
	mock.Mock
}

func NewMockSellerRepository(t mockConstructorTestingT) *MockSellerRepository {
	m := &MockSellerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Seller
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Seller)
	}

	return r0, ret.Error(1)
}

func (_m *MockSellerRepository) ExistsByRegistrationNumber(ctx context.Context, number int64) (bool, error) {
	ret := _m.Called(ctx, number)

	return ret.Bool(0), ret.Error(1)
}

func (_m *MockSellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	ret := _m.Called(ctx, seller)

	return ret.Error(0)
}

func (_m *MockSellerRepository) ListActive(ctx context.Context) ([]*entity.Seller, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Seller
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Seller)
	}

	return r0, ret.Error(1)
}
