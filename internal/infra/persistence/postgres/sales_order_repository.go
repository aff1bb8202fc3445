package postgres

import (
	"context"

	"drivefleet/internal/domain/entity"
	domainerrors "drivefleet/internal/domain/errors"
	"drivefleet/internal/domain/repository"
	"drivefleet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// salesOrderRepository implements the domain.SalesOrderRepository interface using GORM.
type salesOrderRepository struct {
	db *gorm.DB
}

// NewSalesOrderRepository is the constructor for salesOrderRepository.
func NewSalesOrderRepository(db *gorm.DB) repository.SalesOrderRepository {
	return &salesOrderRepository{db: db}
}

// withReferences preloads the order's seller, customer, vehicle and payment,
// including the identity rows behind the two profiles.
func (repo *salesOrderRepository) withReferences(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Seller.User").
		Preload("Customer.User").
		Preload("Vehicle").
		Preload("Payment")
}

// FindByID retrieves an order with all references joined.
func (repo *salesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error) {
	var orderM model.SalesOrderModel
	if err := repo.withReferences(ctx).First(&orderM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find sales order by id")
	}

	return toSalesOrderDomain(&orderM), nil
}

// Create persists a new order row. References are persisted by their own
// repositories; only the foreign keys are written here.
func (repo *salesOrderRepository) Create(ctx context.Context, order *entity.SalesOrder) error {
	orderM := fromSalesOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "sales order references a missing row")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sales order")
	}

	order.ID = orderM.ID

	return nil
}

// Update modifies an existing order row.
func (repo *salesOrderRepository) Update(ctx context.Context, order *entity.SalesOrder) error {
	orderM := fromSalesOrderDomain(order)

	if err := repo.db.WithContext(ctx).Save(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update sales order")
	}

	return nil
}

// CountBySellerID returns how many orders, in any state, reference a seller.
func (repo *salesOrderRepository) CountBySellerID(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SalesOrderModel{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by seller")
	}

	return count, nil
}

// ListBySellerID returns a seller's orders with references joined.
func (repo *salesOrderRepository) ListBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.SalesOrder, error) {
	var orderMs []*model.SalesOrderModel
	if err := repo.withReferences(ctx).
		Where("seller_id = ?", sellerID).
		Order("creation_date").
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by seller")
	}

	return toSalesOrderDomains(orderMs), nil
}

// ListByCustomerID returns a customer's orders with references joined.
func (repo *salesOrderRepository) ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.SalesOrder, error) {
	var orderMs []*model.SalesOrderModel
	if err := repo.withReferences(ctx).
		Where("customer_id = ?", customerID).
		Order("creation_date").
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by customer")
	}

	return toSalesOrderDomains(orderMs), nil
}

// ExistsActiveByVehicleID reports whether a non-cancelled order already
// references the vehicle.
func (repo *salesOrderRepository) ExistsActiveByVehicleID(ctx context.Context, vehicleID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SalesOrderModel{}).
		Where("vehicle_id = ? AND status <> ?", vehicleID, string(entity.OrderStatusCancelled)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check vehicle order linkage")
	}

	return count > 0, nil
}

// List returns all orders with references joined.
func (repo *salesOrderRepository) List(ctx context.Context) ([]*entity.SalesOrder, error) {
	var orderMs []*model.SalesOrderModel
	if err := repo.withReferences(ctx).
		Order("creation_date").
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales orders")
	}

	return toSalesOrderDomains(orderMs), nil
}

func toSalesOrderDomains(data []*model.SalesOrderModel) []*entity.SalesOrder {
	orders := make([]*entity.SalesOrder, 0, len(data))
	for _, orderM := range data {
		orders = append(orders, toSalesOrderDomain(orderM))
	}

	return orders
}

// toSalesOrderDomain converts a GORM SalesOrderModel to a domain SalesOrder entity.
func toSalesOrderDomain(data *model.SalesOrderModel) *entity.SalesOrder {
	if data == nil {
		return nil
	}

	return &entity.SalesOrder{
		ID:             data.ID,
		CreationDate:   data.CreationDate,
		ConclusionDate: data.ConclusionDate,
		TotalValue:     data.TotalValue,
		Status:         entity.OrderStatus(data.Status),
		SellerID:       data.SellerID,
		CustomerID:     data.CustomerID,
		VehicleID:      data.VehicleID,
		Seller:         toSellerDomain(data.Seller),
		Customer:       toCustomerDomain(data.Customer),
		Vehicle:        toVehicleDomain(data.Vehicle),
		Payment:        toPaymentDomain(data.Payment),
	}
}

// fromSalesOrderDomain converts a domain SalesOrder entity to a GORM SalesOrderModel.
// References are deliberately not mapped; each row is owned by its own repository.
func fromSalesOrderDomain(data *entity.SalesOrder) *model.SalesOrderModel {
	if data == nil {
		return nil
	}

	return &model.SalesOrderModel{
		ID:             data.ID,
		CreationDate:   data.CreationDate,
		ConclusionDate: data.ConclusionDate,
		TotalValue:     data.TotalValue,
		Status:         string(data.Status),
		SellerID:       data.SellerID,
		CustomerID:     data.CustomerID,
		VehicleID:      data.VehicleID,
	}
}
