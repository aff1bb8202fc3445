// Package repository contains testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"drivefleet/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockTransactionManager is a mock type for the TransactionManager interface.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t mockConstructorTestingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

// MockRepositoryFactory is a mock type for the RepositoryFactory interface.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t mockConstructorTestingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	ret := _m.Called()

	return ret.Get(0).(repository.UserRepository)
}

func (_m *MockRepositoryFactory) CustomerRepo() repository.CustomerRepository {
	ret := _m.Called()

	return ret.Get(0).(repository.CustomerRepository)
}

func (_m *MockRepositoryFactory) SellerRepo() repository.SellerRepository {
	ret := _m.Called()

	return ret.Get(0).(repository.SellerRepository)
}

func (_m *MockRepositoryFactory) VehicleRepo() repository.VehicleRepository {
	ret := _m.Called()

	return ret.Get(0).(repository.VehicleRepository)
}

func (_m *MockRepositoryFactory) OrderRepo() repository.SalesOrderRepository {
	ret := _m.Called()

	return ret.Get(0).(repository.SalesOrderRepository)
}

func (_m *MockRepositoryFactory) PaymentRepo() repository.PaymentRepository {
	ret := _m.Called()

	return ret.Get(0).(repository.PaymentRepository)
}
