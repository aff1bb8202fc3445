// Package service contains testify mocks for the domain service interfaces.
package service

import (
	"time"

	"drivefleet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher is a mock type for the PasswordHasher interface.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t mockConstructorTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (_m *MockPasswordHasher) Check(password, hash string) bool {
	ret := _m.Called(password, hash)

	return ret.Bool(0)
}

// MockTokenService is a mock type for the TokenService interface.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t mockConstructorTestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockTokenService) GenerateToken(userID uuid.UUID, role string) (string, error) {
	ret := _m.Called(userID, role)

	return ret.String(0), ret.Error(1)
}

func (_m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	var r0 *service.Claims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}

	return r0, ret.Error(1)
}

func (_m *MockTokenService) AccessTokenDuration() time.Duration {
	ret := _m.Called()

	return ret.Get(0).(time.Duration)
}

// MockRegistrationNumberSource is a mock type for the RegistrationNumberSource interface.
type MockRegistrationNumberSource struct {
	mock.Mock
}

func NewMockRegistrationNumberSource(t mockConstructorTestingT) *MockRegistrationNumberSource {
	m := &MockRegistrationNumberSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockRegistrationNumberSource) Next() int64 {
	ret := _m.Called()

	return ret.Get(0).(int64)
}
