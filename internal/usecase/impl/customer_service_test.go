package impl

import (
	"context"
	"testing"

	"drivefleet/internal/domain/entity"
	domainerrors "drivefleet/internal/domain/errors"
	"drivefleet/internal/domain/repository"
	mockRepo "drivefleet/internal/mocks/repository"
	mockUC "drivefleet/internal/mocks/usecase"
	"drivefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	txManager    *mockRepo.MockTransactionManager
	customerRepo *mockRepo.MockCustomerRepository
	userUsecase  *mockUC.MockUserUsecase
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	userUsecase := mockUC.NewMockUserUsecase(t)

	service := NewCustomerService(txManager, customerRepo, userUsecase, discardLogger())

	return customerServiceFixtures{
		service:      service,
		txManager:    txManager,
		customerRepo: customerRepo,
		userUsecase:  userUsecase,
	}
}

func validCustomerInput() *usecase.CreateCustomerInput {
	return &usecase.CreateCustomerInput{
		User: usecase.UserInput{
			Name:     "Bruno Costa",
			Email:    "bruno@example.com",
			Password: "Password123!",
			Role:     entity.RoleCustomer,
		},
		CPF:     "12345678901",
		Phone:   "11987654321",
		Address: "Rua das Laranjeiras 120, São Paulo",
	}
}

func TestCustomerService_Create_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := validCustomerInput()
	userID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	mockFactory.On("CustomerRepo").Return(repository.CustomerRepository(mockCustomerRepo))

	mockCustomerRepo.On("ExistsByCPF", ctx, input.CPF).Return(false, nil)
	mockCustomerRepo.On("ExistsByPhone", ctx, input.Phone).Return(false, nil)
	fx.userUsecase.On("RegisterTx", ctx, mockFactory, &input.User).
		Return(&entity.User{ID: userID, Email: input.User.Email, Role: entity.RoleCustomer, Status: entity.UserStatusActive}, nil)
	mockCustomerRepo.On("Create", ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(args mock.Arguments) {
			customer := args.Get(1).(*entity.Customer)
			customer.ID = uuid.New()
		}).
		Return(nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(mockFactory))

	customer, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, userID, customer.UserID)
	assert.Equal(t, input.CPF, customer.CPF)
	assert.Equal(t, input.Phone, customer.Phone)
	assert.Equal(t, input.Address, customer.Address)
}

func TestCustomerService_Create_MalformedCPF(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := validCustomerInput()
	input.CPF = "123.456.789-01"

	customer, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCustomerService_Create_MalformedPhone(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := validCustomerInput()
	input.Phone = "987654321"

	customer, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCustomerService_Create_DuplicateCPF(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := validCustomerInput()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	mockFactory.On("CustomerRepo").Return(repository.CustomerRepository(mockCustomerRepo))
	mockCustomerRepo.On("ExistsByCPF", ctx, input.CPF).Return(true, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(mockFactory))

	customer, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrCPFAlreadyExists))
	fx.userUsecase.AssertNotCalled(t, "RegisterTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerService_Create_DuplicatePhone(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := validCustomerInput()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	mockFactory.On("CustomerRepo").Return(repository.CustomerRepository(mockCustomerRepo))
	mockCustomerRepo.On("ExistsByCPF", ctx, input.CPF).Return(false, nil)
	mockCustomerRepo.On("ExistsByPhone", ctx, input.Phone).Return(true, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(mockFactory))

	customer, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrPhoneAlreadyExists))
}

func TestCustomerService_Create_IdentityFailureRollsBack(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	input := validCustomerInput()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	mockFactory.On("CustomerRepo").Return(repository.CustomerRepository(mockCustomerRepo))
	mockCustomerRepo.On("ExistsByCPF", ctx, input.CPF).Return(false, nil)
	mockCustomerRepo.On("ExistsByPhone", ctx, input.Phone).Return(false, nil)
	fx.userUsecase.On("RegisterTx", ctx, mockFactory, &input.User).
		Return(nil, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "registration failed"))

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(mockFactory))

	customer, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
	mockCustomerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerService_GetByID_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	fx.customerRepo.On("FindByID", ctx, customerID).Return(nil, repository.ErrCustomerNotFound)

	customer, err := fx.service.GetByID(ctx, customerID)

	require.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_Delete_ExcludesIdentity(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()
	userID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	mockFactory.On("CustomerRepo").Return(repository.CustomerRepository(mockCustomerRepo))
	mockCustomerRepo.On("FindByID", ctx, customerID).
		Return(&entity.Customer{ID: customerID, UserID: userID, CPF: "12345678901", Phone: "11987654321"}, nil)
	fx.userUsecase.On("ExcludeTx", ctx, mockFactory, userID).Return(nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(mockFactory))

	err := fx.service.Delete(ctx, customerID)

	require.NoError(t, err)
}

func TestCustomerService_Delete_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customerID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	mockFactory.On("CustomerRepo").Return(repository.CustomerRepository(mockCustomerRepo))
	mockCustomerRepo.On("FindByID", ctx, customerID).Return(nil, repository.ErrCustomerNotFound)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(mockFactory))

	err := fx.service.Delete(ctx, customerID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
	fx.userUsecase.AssertNotCalled(t, "ExcludeTx", mock.Anything, mock.Anything, mock.Anything)
}
