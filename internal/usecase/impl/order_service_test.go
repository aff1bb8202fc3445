package impl

import (
	"context"
	"testing"
	"time"

	"drivefleet/internal/domain/entity"
	domainerrors "drivefleet/internal/domain/errors"
	"drivefleet/internal/domain/repository"
	mockRepo "drivefleet/internal/mocks/repository"
	"drivefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockSalesOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockSalesOrderRepository(t)

	service := NewOrderService(txManager, orderRepo, discardLogger())

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

// orderTxMocks bundles the per-transaction repository mocks the coordinator
// touches, wired into a single factory.
type orderTxMocks struct {
	factory      *mockRepo.MockRepositoryFactory
	sellerRepo   *mockRepo.MockSellerRepository
	customerRepo *mockRepo.MockCustomerRepository
	vehicleRepo  *mockRepo.MockVehicleRepository
	orderRepo    *mockRepo.MockSalesOrderRepository
	paymentRepo  *mockRepo.MockPaymentRepository
}

func createOrderTxMocks(t *testing.T) orderTxMocks {
	factory := mockRepo.NewMockRepositoryFactory(t)
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	orderRepo := mockRepo.NewMockSalesOrderRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)

	factory.On("SellerRepo").Return(repository.SellerRepository(sellerRepo)).Maybe()
	factory.On("CustomerRepo").Return(repository.CustomerRepository(customerRepo)).Maybe()
	factory.On("VehicleRepo").Return(repository.VehicleRepository(vehicleRepo)).Maybe()
	factory.On("OrderRepo").Return(repository.SalesOrderRepository(orderRepo)).Maybe()
	factory.On("PaymentRepo").Return(repository.PaymentRepository(paymentRepo)).Maybe()

	return orderTxMocks{
		factory:      factory,
		sellerRepo:   sellerRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
	}
}

func activeSeller() *entity.Seller {
	return &entity.Seller{
		ID:                 uuid.New(),
		UserID:             uuid.New(),
		User:               &entity.User{Name: "Carlos Pereira", Email: "carlos@example.com", Status: entity.UserStatusActive},
		RegistrationNumber: 12_345_678,
	}
}

func activeCustomer() *entity.Customer {
	return &entity.Customer{
		ID:     uuid.New(),
		UserID: uuid.New(),
		User:   &entity.User{Name: "Bruno Costa", Email: "bruno@example.com", Status: entity.UserStatusActive},
		CPF:    "12345678901",
		Phone:  "11987654321",
	}
}

func availableVehicle() *entity.Vehicle {
	return &entity.Vehicle{
		ID:     uuid.New(),
		Brand:  "Toyota",
		Model:  "Corolla",
		Plate:  "BRA2E19",
		Price:  98000,
		Status: entity.VehicleStatusAvailable,
	}
}

func TestOrderService_Create_SnapshotsVehiclePrice(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createOrderTxMocks(t)

	ctx := context.Background()
	seller := activeSeller()
	customer := activeCustomer()
	vehicle := availableVehicle()
	input := &usecase.CreateOrderInput{SellerID: seller.ID, CustomerID: customer.ID, VehicleID: vehicle.ID}

	tx.sellerRepo.On("FindByID", ctx, seller.ID).Return(seller, nil)
	tx.customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
	tx.vehicleRepo.On("FindByID", ctx, vehicle.ID).Return(vehicle, nil)
	tx.orderRepo.On("ExistsActiveByVehicleID", ctx, vehicle.ID).Return(false, nil)
	tx.vehicleRepo.On("Update", ctx, mock.MatchedBy(func(v *entity.Vehicle) bool {
		return v.Status == entity.VehicleStatusReserved
	})).Return(nil)
	tx.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.SalesOrder")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entity.SalesOrder)
			order.ID = uuid.New()
		}).
		Return(nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(tx.factory))

	order, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderStatusOpen, order.Status)
	assert.Equal(t, 98000.0, order.TotalValue)
	assert.Nil(t, order.ConclusionDate)
	assert.Equal(t, entity.VehicleStatusReserved, order.Vehicle.Status)
	assert.Equal(t, seller.ID, order.SellerID)
	assert.Equal(t, customer.ID, order.CustomerID)

	// Catalog price changes after creation never touch the order total.
	vehicle.Price = 105000
	assert.Equal(t, 98000.0, order.TotalValue)
}

func TestOrderService_Create_VehicleAlreadyLinked(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createOrderTxMocks(t)

	ctx := context.Background()
	seller := activeSeller()
	customer := activeCustomer()
	vehicle := availableVehicle()
	input := &usecase.CreateOrderInput{SellerID: seller.ID, CustomerID: customer.ID, VehicleID: vehicle.ID}

	tx.sellerRepo.On("FindByID", ctx, seller.ID).Return(seller, nil)
	tx.customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
	tx.vehicleRepo.On("FindByID", ctx, vehicle.ID).Return(vehicle, nil)
	tx.orderRepo.On("ExistsActiveByVehicleID", ctx, vehicle.ID).Return(true, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(tx.factory))

	order, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrVehicleAlreadyLinked))
	tx.vehicleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_Create_VehicleNotAvailable(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createOrderTxMocks(t)

	ctx := context.Background()
	seller := activeSeller()
	customer := activeCustomer()
	vehicle := availableVehicle()
	vehicle.Status = entity.VehicleStatusSold
	input := &usecase.CreateOrderInput{SellerID: seller.ID, CustomerID: customer.ID, VehicleID: vehicle.ID}

	tx.sellerRepo.On("FindByID", ctx, seller.ID).Return(seller, nil)
	tx.customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
	tx.vehicleRepo.On("FindByID", ctx, vehicle.ID).Return(vehicle, nil)
	tx.orderRepo.On("ExistsActiveByVehicleID", ctx, vehicle.ID).Return(false, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(tx.factory))

	order, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrVehicleNotAvailable))
}

func TestOrderService_Create_ExcludedSeller(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createOrderTxMocks(t)

	ctx := context.Background()
	seller := activeSeller()
	seller.User.Status = entity.UserStatusExcluded
	input := &usecase.CreateOrderInput{SellerID: seller.ID, CustomerID: uuid.New(), VehicleID: uuid.New()}

	tx.sellerRepo.On("FindByID", ctx, seller.ID).Return(seller, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(tx.factory))

	order, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrUserExcluded))
	tx.customerRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestOrderService_Create_ExcludedCustomer(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createOrderTxMocks(t)

	ctx := context.Background()
	seller := activeSeller()
	customer := activeCustomer()
	customer.User.Status = entity.UserStatusExcluded
	input := &usecase.CreateOrderInput{SellerID: seller.ID, CustomerID: customer.ID, VehicleID: uuid.New()}

	tx.sellerRepo.On("FindByID", ctx, seller.ID).Return(seller, nil)
	tx.customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(tx.factory))

	order, err := fx.service.Create(ctx, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrUserExcluded))
	tx.vehicleRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func openOrder(vehicle *entity.Vehicle) *entity.SalesOrder {
	return &entity.SalesOrder{
		ID:           uuid.New(),
		CreationDate: time.Now().Add(-time.Hour),
		TotalValue:   vehicle.Price,
		Status:       entity.OrderStatusOpen,
		SellerID:     uuid.New(),
		CustomerID:   uuid.New(),
		VehicleID:    vehicle.ID,
		Vehicle:      vehicle,
	}
}

func TestOrderService_AttachPayment_ApprovedConcludesOrder(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createOrderTxMocks(t)

	ctx := context.Background()
	vehicle := availableVehicle()
	vehicle.Status = entity.VehicleStatusReserved
	order := openOrder(vehicle)
	input := &usecase.PaymentInput{
		PaymentDate: time.Now().Add(-24 * time.Hour),
		Price:       order.TotalValue,
		Method:      entity.PaymentMethodPix,
		Status:      entity.PaymentStatusApproved,
	}

	tx.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	tx.paymentRepo.On("ExistsByOrderID", ctx, order.ID).Return(false, nil)
	tx.paymentRepo.On("Create", ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(args mock.Arguments) {
			payment := args.Get(1).(*entity.Payment)
			payment.ID = uuid.New()
		}).
		Return(nil)
	tx.orderRepo.On("Update", ctx, mock.MatchedBy(func(o *entity.SalesOrder) bool {
		return o.Status == entity.OrderStatusConcluded
	})).Return(nil)
	tx.vehicleRepo.On("FindByID", ctx, vehicle.ID).Return(vehicle, nil)
	tx.vehicleRepo.On("Update", ctx, mock.MatchedBy(func(v *entity.Vehicle) bool {
		return v.Status == entity.VehicleStatusSold
	})).Return(nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(tx.factory))

	updated, err := fx.service.AttachPayment(ctx, order.ID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.OrderStatusConcluded, updated.Status)
	require.NotNil(t, updated.ConclusionDate)
	assert.Equal(t, entity.VehicleStatusSold, updated.Vehicle.Status)
	require.NotNil(t, updated.Payment)
	assert.Equal(t, entity.PaymentStatusApproved, updated.Payment.Status)
	assert.Equal(t, order.ID, updated.Payment.SalesOrderID)
}

func TestOrderService_AttachPayment_PendingLeavesOrderOpen(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createOrderTxMocks(t)

	ctx := context.Background()
	vehicle := availableVehicle()
	vehicle.Status = entity.VehicleStatusReserved
	order := openOrder(vehicle)
	input := &usecase.PaymentInput{
		PaymentDate: time.Now().Add(-24 * time.Hour),
		Price:       order.TotalValue,
		Method:      entity.PaymentMethodBoleto,
		Status:      entity.PaymentStatusPending,
	}

	tx.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	tx.paymentRepo.On("ExistsByOrderID", ctx, order.ID).Return(false, nil)
	tx.paymentRepo.On("Create", ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(tx.factory))

	updated, err := fx.service.AttachPayment(ctx, order.ID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.OrderStatusOpen, updated.Status)
	assert.Nil(t, updated.ConclusionDate)
	assert.Equal(t, entity.VehicleStatusReserved, updated.Vehicle.Status)
	tx.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_AttachPayment_SecondPaymentRejected(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createOrderTxMocks(t)

	ctx := context.Background()
	vehicle := availableVehicle()
	vehicle.Status = entity.VehicleStatusReserved
	order := openOrder(vehicle)
	order.Payment = &entity.Payment{ID: uuid.New(), SalesOrderID: order.ID, Status: entity.PaymentStatusRejected}
	input := &usecase.PaymentInput{
		PaymentDate: time.Now().Add(-24 * time.Hour),
		Price:       order.TotalValue,
		Method:      entity.PaymentMethodCard,
		Status:      entity.PaymentStatusApproved,
	}

	tx.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(tx.factory))

	updated, err := fx.service.AttachPayment(ctx, order.ID, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentAlreadyExists))
	tx.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_AttachPayment_OrderNotOpen(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createOrderTxMocks(t)

	ctx := context.Background()
	vehicle := availableVehicle()
	order := openOrder(vehicle)
	order.Status = entity.OrderStatusCancelled
	input := &usecase.PaymentInput{
		PaymentDate: time.Now().Add(-24 * time.Hour),
		Price:       order.TotalValue,
		Method:      entity.PaymentMethodPix,
		Status:      entity.PaymentStatusApproved,
	}

	tx.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(tx.factory))

	updated, err := fx.service.AttachPayment(ctx, order.ID, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotOpen))
}

func TestOrderService_AttachPayment_FuturePaymentDate(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createOrderTxMocks(t)

	ctx := context.Background()
	vehicle := availableVehicle()
	vehicle.Status = entity.VehicleStatusReserved
	order := openOrder(vehicle)
	input := &usecase.PaymentInput{
		PaymentDate: time.Now().Add(72 * time.Hour),
		Price:       order.TotalValue,
		Method:      entity.PaymentMethodPix,
		Status:      entity.PaymentStatusApproved,
	}

	tx.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	tx.paymentRepo.On("ExistsByOrderID", ctx, order.ID).Return(false, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(tx.factory))

	updated, err := fx.service.AttachPayment(ctx, order.ID, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	tx.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_Cancel_ReleasesVehicle(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createOrderTxMocks(t)

	ctx := context.Background()
	vehicle := availableVehicle()
	vehicle.Status = entity.VehicleStatusReserved
	order := openOrder(vehicle)

	tx.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	tx.orderRepo.On("Update", ctx, mock.MatchedBy(func(o *entity.SalesOrder) bool {
		return o.Status == entity.OrderStatusCancelled
	})).Return(nil)
	tx.vehicleRepo.On("FindByID", ctx, vehicle.ID).Return(vehicle, nil)
	tx.vehicleRepo.On("Update", ctx, mock.MatchedBy(func(v *entity.Vehicle) bool {
		return v.Status == entity.VehicleStatusAvailable
	})).Return(nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(tx.factory))

	cancelled, err := fx.service.Cancel(ctx, order.ID)

	require.NoError(t, err)
	require.NotNil(t, cancelled)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.ConclusionDate)
	assert.Equal(t, entity.VehicleStatusAvailable, cancelled.Vehicle.Status)
}

func TestOrderService_Cancel_ClosedOrder(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createOrderTxMocks(t)

	ctx := context.Background()
	vehicle := availableVehicle()
	order := openOrder(vehicle)
	order.Status = entity.OrderStatusConcluded

	tx.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType(txFnType)).
		Return(runWithFactory(tx.factory))

	cancelled, err := fx.service.Cancel(ctx, order.ID)

	require.Error(t, err)
	assert.Nil(t, cancelled)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotOpen))
	tx.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_ProjectSummary_FullyLoaded(t *testing.T) {
	fx := createTestOrderService(t)

	seller := activeSeller()
	customer := activeCustomer()
	vehicle := availableVehicle()
	conclusion := time.Now()
	order := &entity.SalesOrder{
		ID:             uuid.New(),
		CreationDate:   time.Now().Add(-time.Hour),
		ConclusionDate: &conclusion,
		TotalValue:     98000,
		Status:         entity.OrderStatusConcluded,
		SellerID:       seller.ID,
		CustomerID:     customer.ID,
		VehicleID:      vehicle.ID,
		Seller:         seller,
		Customer:       customer,
		Vehicle:        vehicle,
		Payment: &entity.Payment{
			ID:           uuid.New(),
			Method:       entity.PaymentMethodPix,
			Status:       entity.PaymentStatusApproved,
			Price:        98000,
			SalesOrderID: uuid.New(),
		},
	}

	summary := fx.service.ProjectSummary(order)

	require.NotNil(t, summary)
	assert.Equal(t, order.ID, summary.ID)
	require.NotNil(t, summary.Seller)
	assert.Equal(t, seller.RegistrationNumber, summary.Seller.RegistrationNumber)
	assert.Equal(t, "Carlos Pereira", summary.Seller.Name)
	require.NotNil(t, summary.Customer)
	assert.Equal(t, customer.Phone, summary.Customer.Phone)
	assert.Equal(t, "Bruno Costa", summary.Customer.Name)
	require.NotNil(t, summary.Vehicle)
	assert.Equal(t, "Corolla", summary.Vehicle.Model)
	require.NotNil(t, summary.Payment)
	assert.Equal(t, entity.PaymentStatusApproved, summary.Payment.Status)
}

func TestOrderService_ProjectSummary_UnloadedReferences(t *testing.T) {
	fx := createTestOrderService(t)

	order := &entity.SalesOrder{
		ID:           uuid.New(),
		CreationDate: time.Now(),
		TotalValue:   50000,
		Status:       entity.OrderStatusOpen,
	}

	summary := fx.service.ProjectSummary(order)

	require.NotNil(t, summary)
	assert.Nil(t, summary.Seller)
	assert.Nil(t, summary.Customer)
	assert.Nil(t, summary.Vehicle)
	assert.Nil(t, summary.Payment)
	assert.Nil(t, summary.ConclusionDate)
	assert.Equal(t, 50000.0, summary.TotalValue)
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	fx.orderRepo.On("FindByID", ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetByID(ctx, orderID)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
