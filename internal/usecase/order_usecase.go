package usecase

import (
	"context"
	"time"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput binds exactly one seller, one customer and one vehicle.
type CreateOrderInput struct {
	SellerID   uuid.UUID
	CustomerID uuid.UUID
	VehicleID  uuid.UUID
}

// PaymentInput defines a payment attempt on an open order.
type PaymentInput struct {
	PaymentDate time.Time
	Price       float64
	Method      entity.PaymentMethod
	Status      entity.PaymentStatus
}

// --- Projection DTOs ---

// SellerSummary is the seller slice of a projected order.
type SellerSummary struct {
	ID                 uuid.UUID `json:"id"`
	RegistrationNumber int64     `json:"registrationNumber"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
}

// CustomerSummary is the customer slice of a projected order.
type CustomerSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// VehicleSummary is the vehicle slice of a projected order.
type VehicleSummary struct {
	ID              uuid.UUID `json:"id"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	YearManufacture int       `json:"yearManufacture"`
	YearModel       int       `json:"yearModel"`
	Price           float64   `json:"price"`
}

// PaymentSummary is the payment slice of a projected order.
type PaymentSummary struct {
	ID           uuid.UUID            `json:"id"`
	Method       entity.PaymentMethod `json:"method"`
	Status       entity.PaymentStatus `json:"status"`
	Price        float64              `json:"price"`
	PaymentDate  time.Time            `json:"paymentDate"`
	SalesOrderID uuid.UUID            `json:"salesOrderId"`
}

// OrderSummary is the flattened, presentation-ready view of a sales order.
type OrderSummary struct {
	ID             uuid.UUID          `json:"id"`
	CreationDate   time.Time          `json:"creationDate"`
	ConclusionDate *time.Time         `json:"conclusionDate,omitempty"`
	TotalValue     float64            `json:"totalValue"`
	Status         entity.OrderStatus `json:"status"`
	Seller         *SellerSummary     `json:"seller,omitempty"`
	Customer       *CustomerSummary   `json:"customer,omitempty"`
	Vehicle        *VehicleSummary    `json:"vehicle,omitempty"`
	Payment        *PaymentSummary    `json:"payment,omitempty"`
}

// OrderUsecase is the sales order coordinator: it creates and closes orders,
// enforces the 1:1 bindings and drives the status transitions.
type OrderUsecase interface {
	// Create opens an order, reserving the vehicle and snapshotting its price.
	Create(ctx context.Context, input *CreateOrderInput) (*entity.SalesOrder, error)

	// AttachPayment records the order's single payment; an APPROVED payment
	// concludes the order and marks the vehicle sold.
	AttachPayment(ctx context.Context, orderID uuid.UUID, input *PaymentInput) (*entity.SalesOrder, error)

	// Cancel terminates an open order and releases its vehicle.
	Cancel(ctx context.Context, orderID uuid.UUID) (*entity.SalesOrder, error)

	// GetByID looks up an order with its references joined.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error)

	// List returns all orders.
	List(ctx context.Context) ([]*entity.SalesOrder, error)

	// ProjectSummary assembles the flattened view of an order.
	// Pure and read-only: no lookups, no side effects.
	ProjectSummary(order *entity.SalesOrder) *OrderSummary
}
