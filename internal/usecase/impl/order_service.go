package impl

import (
	"context"
	"log/slog"
	"time"

	"drivefleet/internal/domain/entity"
	domainerrors "drivefleet/internal/domain/errors"
	"drivefleet/internal/domain/repository"
	"drivefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface. It is the central
// aggregate: every mutation runs in one transaction so the vehicle can never
// stay reserved behind a failed order write.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.SalesOrderRepository
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.SalesOrderRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Create opens a sales order: resolves the three references, guards the
// vehicle's single-active-order rule, reserves the vehicle and snapshots its
// price as the order total.
func (srv *orderService) Create(ctx context.Context, input *usecase.CreateOrderInput) (*entity.SalesOrder, error) {
	var created *entity.SalesOrder

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		seller, txErr := repoFactory.SellerRepo().FindByID(ctx, input.SellerID)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrSellerNotFound) {
				return errors.Wrap(domainerrors.ErrSellerNotFound, "order creation failed")
			}

			return errors.Wrap(txErr, "failed to find seller for order")
		}
		if seller.User != nil && !seller.User.IsActive() {
			return errors.Wrap(domainerrors.ErrUserExcluded, "order creation failed: seller identity excluded")
		}

		customer, txErr := repoFactory.CustomerRepo().FindByID(ctx, input.CustomerID)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "order creation failed")
			}

			return errors.Wrap(txErr, "failed to find customer for order")
		}
		if customer.User != nil && !customer.User.IsActive() {
			return errors.Wrap(domainerrors.ErrUserExcluded, "order creation failed: customer identity excluded")
		}

		vehicleRepo := repoFactory.VehicleRepo()
		vehicle, txErr := vehicleRepo.FindByID(ctx, input.VehicleID)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrVehicleNotFound) {
				return errors.Wrap(domainerrors.ErrVehicleNotFound, "order creation failed")
			}

			return errors.Wrap(txErr, "failed to find vehicle for order")
		}

		linked, txErr := repoFactory.OrderRepo().ExistsActiveByVehicleID(ctx, vehicle.ID)
		if txErr != nil {
			return errors.Wrap(txErr, "failed to check vehicle order linkage")
		}
		if linked {
			return errors.Wrap(domainerrors.ErrVehicleAlreadyLinked, "order creation failed")
		}

		if txErr := vehicle.Reserve(); txErr != nil {
			return txErr
		}
		if txErr := vehicleRepo.Update(ctx, vehicle); txErr != nil {
			return errors.Wrap(txErr, "failed to reserve vehicle")
		}

		order := &entity.SalesOrder{
			CreationDate: time.Now(),
			TotalValue:   vehicle.Price, // Snapshot: later price changes never touch this order.
			Status:       entity.OrderStatusOpen,
			SellerID:     seller.ID,
			CustomerID:   customer.ID,
			VehicleID:    vehicle.ID,
			Seller:       seller,
			Customer:     customer,
			Vehicle:      vehicle,
		}
		if txErr := repoFactory.OrderRepo().Create(ctx, order); txErr != nil {
			return errors.Wrap(txErr, "failed to create sales order")
		}
		created = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}
	srv.logger.Info("Sales order opened",
		slog.Any("orderID", created.ID),
		slog.Any("vehicleID", created.VehicleID),
		slog.Float64("totalValue", created.TotalValue))

	return created, nil
}

// AttachPayment records the order's single payment. An APPROVED payment
// concludes the order and marks the vehicle sold; PENDING and REJECTED
// payments leave the order open.
func (srv *orderService) AttachPayment(ctx context.Context, orderID uuid.UUID, input *usecase.PaymentInput) (*entity.SalesOrder, error) {
	var updated *entity.SalesOrder

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, txErr := srv.findOrder(ctx, repoFactory, orderID)
		if txErr != nil {
			return txErr
		}

		if !order.IsOpen() {
			return errors.Wrap(domainerrors.ErrOrderNotOpen, "payment attachment failed")
		}

		paymentRepo := repoFactory.PaymentRepo()
		if order.Payment != nil {
			return errors.Wrap(domainerrors.ErrPaymentAlreadyExists, "payment attachment failed")
		}
		exists, txErr := paymentRepo.ExistsByOrderID(ctx, order.ID)
		if txErr != nil {
			return errors.Wrap(txErr, "failed to check existing payment")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrPaymentAlreadyExists, "payment attachment failed")
		}

		now := time.Now()
		payment := &entity.Payment{
			PaymentDate:  input.PaymentDate,
			Price:        input.Price,
			Method:       input.Method,
			Status:       input.Status,
			SalesOrderID: order.ID,
		}
		if txErr := payment.Validate(now); txErr != nil {
			return txErr
		}
		if txErr := paymentRepo.Create(ctx, payment); txErr != nil {
			return errors.Wrap(txErr, "failed to record payment")
		}
		order.Payment = payment

		if payment.Status == entity.PaymentStatusApproved {
			if txErr := srv.concludeOrder(ctx, repoFactory, order, now); txErr != nil {
				return txErr
			}
		}
		updated = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute payment attachment transaction")
	}
	srv.logger.Info("Payment recorded",
		slog.Any("orderID", orderID),
		slog.Any("paymentStatus", updated.Payment.Status),
		slog.Any("orderStatus", updated.Status))

	return updated, nil
}

// concludeOrder closes an order after an approved payment and finalizes the
// vehicle reservation.
func (srv *orderService) concludeOrder(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.SalesOrder, now time.Time) error {
	if err := order.Conclude(now); err != nil {
		return err
	}
	if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
		return errors.Wrap(err, "failed to conclude sales order")
	}

	vehicleRepo := repoFactory.VehicleRepo()
	vehicle, err := vehicleRepo.FindByID(ctx, order.VehicleID)
	if err != nil {
		return errors.Wrap(err, "failed to find vehicle for conclusion")
	}
	if err := vehicle.MarkSold(); err != nil {
		return err
	}
	if err := vehicleRepo.Update(ctx, vehicle); err != nil {
		return errors.Wrap(err, "failed to mark vehicle sold")
	}
	order.Vehicle = vehicle

	return nil
}

// Cancel terminates an open order and releases its vehicle.
func (srv *orderService) Cancel(ctx context.Context, orderID uuid.UUID) (*entity.SalesOrder, error) {
	var cancelled *entity.SalesOrder

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, txErr := srv.findOrder(ctx, repoFactory, orderID)
		if txErr != nil {
			return txErr
		}

		if txErr := order.Cancel(time.Now()); txErr != nil {
			return txErr
		}
		if txErr := repoFactory.OrderRepo().Update(ctx, order); txErr != nil {
			return errors.Wrap(txErr, "failed to cancel sales order")
		}

		vehicleRepo := repoFactory.VehicleRepo()
		vehicle, txErr := vehicleRepo.FindByID(ctx, order.VehicleID)
		if txErr != nil {
			return errors.Wrap(txErr, "failed to find vehicle for release")
		}
		if txErr := vehicle.Release(); txErr != nil {
			return txErr
		}
		if txErr := vehicleRepo.Update(ctx, vehicle); txErr != nil {
			return errors.Wrap(txErr, "failed to release vehicle")
		}
		order.Vehicle = vehicle
		cancelled = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order cancellation transaction")
	}
	srv.logger.Info("Sales order cancelled", slog.Any("orderID", orderID))

	return cancelled, nil
}

func (srv *orderService) findOrder(ctx context.Context, repoFactory repository.RepositoryFactory, orderID uuid.UUID) (*entity.SalesOrder, error) {
	order, err := repoFactory.OrderRepo().FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find sales order")
	}

	return order, nil
}

// GetByID looks up an order with its references joined.
func (srv *orderService) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find sales order by id")
	}

	return order, nil
}

// List returns all orders.
func (srv *orderService) List(ctx context.Context) ([]*entity.SalesOrder, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales orders")
	}

	return orders, nil
}

// ProjectSummary assembles the flattened view of an order. Pure and
// read-only: references that were not loaded are simply omitted.
func (srv *orderService) ProjectSummary(order *entity.SalesOrder) *usecase.OrderSummary {
	summary := &usecase.OrderSummary{
		ID:             order.ID,
		CreationDate:   order.CreationDate,
		ConclusionDate: order.ConclusionDate,
		TotalValue:     order.TotalValue,
		Status:         order.Status,
	}

	if order.Seller != nil {
		summary.Seller = &usecase.SellerSummary{
			ID:                 order.Seller.ID,
			RegistrationNumber: order.Seller.RegistrationNumber,
		}
		if order.Seller.User != nil {
			summary.Seller.Name = order.Seller.User.Name
			summary.Seller.Email = order.Seller.User.Email
		}
	}

	if order.Customer != nil {
		summary.Customer = &usecase.CustomerSummary{
			ID:    order.Customer.ID,
			Phone: order.Customer.Phone,
		}
		if order.Customer.User != nil {
			summary.Customer.Name = order.Customer.User.Name
			summary.Customer.Email = order.Customer.User.Email
		}
	}

	if order.Vehicle != nil {
		summary.Vehicle = &usecase.VehicleSummary{
			ID:              order.Vehicle.ID,
			Brand:           order.Vehicle.Brand,
			Model:           order.Vehicle.Model,
			YearManufacture: order.Vehicle.YearManufacture,
			YearModel:       order.Vehicle.YearModel,
			Price:           order.Vehicle.Price,
		}
	}

	if order.Payment != nil {
		summary.Payment = &usecase.PaymentSummary{
			ID:           order.Payment.ID,
			Method:       order.Payment.Method,
			Status:       order.Payment.Status,
			Price:        order.Payment.Price,
			PaymentDate:  order.Payment.PaymentDate,
			SalesOrderID: order.Payment.SalesOrderID,
		}
	}

	return summary
}
