// Package usecase contains testify mocks for the application usecase interfaces.
package usecase

import (
	"context"

	"drivefleet/internal/domain/entity"
	"drivefleet/internal/domain/repository"
	"drivefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUserUsecase is a mock type for the UserUsecase interface.
type MockUserUsecase struct {
	mock.Mock
}

func NewMockUserUsecase(t mockConstructorTestingT) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockUserUsecase) Register(ctx context.Context, input *usecase.UserInput) (*entity.User, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserUsecase) Modify(ctx context.Context, id uuid.UUID, input *usecase.UserInput) (*entity.User, error) {
	ret := _m.Called(ctx, id, input)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserUsecase) Exclude(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *MockUserUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserUsecase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := _m.Called(ctx, email)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *usecase.LoginOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.LoginOutput)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserUsecase) RegisterTx(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.UserInput) (*entity.User, error) {
	ret := _m.Called(ctx, repoFactory, input)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserUsecase) ModifyTx(ctx context.Context, repoFactory repository.RepositoryFactory, id uuid.UUID, input *usecase.UserInput) (*entity.User, error) {
	ret := _m.Called(ctx, repoFactory, id, input)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserUsecase) ExcludeTx(ctx context.Context, repoFactory repository.RepositoryFactory, id uuid.UUID) error {
	ret := _m.Called(ctx, repoFactory, id)

	return ret.Error(0)
}

// MockOrderUsecase is a mock type for the OrderUsecase interface.
type MockOrderUsecase struct {
	mock.Mock
}

func NewMockOrderUsecase(t mockConstructorTestingT) *MockOrderUsecase {
	m := &MockOrderUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockOrderUsecase) Create(ctx context.Context, input *usecase.CreateOrderInput) (*entity.SalesOrder, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.SalesOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.SalesOrder)
	}

	return r0, ret.Error(1)
}

func (_m *MockOrderUsecase) AttachPayment(ctx context.Context, orderID uuid.UUID, input *usecase.PaymentInput) (*entity.SalesOrder, error) {
	ret := _m.Called(ctx, orderID, input)

	var r0 *entity.SalesOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.SalesOrder)
	}

	return r0, ret.Error(1)
}

func (_m *MockOrderUsecase) Cancel(ctx context.Context, orderID uuid.UUID) (*entity.SalesOrder, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *entity.SalesOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.SalesOrder)
	}

	return r0, ret.Error(1)
}

func (_m *MockOrderUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.SalesOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.SalesOrder)
	}

	return r0, ret.Error(1)
}

func (_m *MockOrderUsecase) List(ctx context.Context) ([]*entity.SalesOrder, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.SalesOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.SalesOrder)
	}

	return r0, ret.Error(1)
}

func (_m *MockOrderUsecase) ProjectSummary(order *entity.SalesOrder) *usecase.OrderSummary {
	ret := _m.Called(order)

	var r0 *usecase.OrderSummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.OrderSummary)
	}

	return r0
}
