package handler

import (
	"log/slog"
	"net/http"
	"time"

	"drivefleet/internal/delivery/http/response"
	"drivefleet/internal/domain/entity"
	"drivefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateOrderRequest binds one seller, one customer and one vehicle.
type CreateOrderRequest struct {
	SellerID   uuid.UUID `json:"sellerId" validate:"required"`
	CustomerID uuid.UUID `json:"customerId" validate:"required"`
	VehicleID  uuid.UUID `json:"vehicleId" validate:"required"`
}

// PaymentRequest records the single payment of an open order.
// PaymentDate is a calendar date (YYYY-MM-DD); future dates are rejected.
type PaymentRequest struct {
	PaymentDate string  `json:"paymentDate" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Method      string  `json:"method" validate:"required,oneof=PIX CARD BOLETO"`
	Status      string  `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}

// OrderHandler holds dependencies for sales-order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// Create opens a sales order.
func (h *OrderHandler) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.Create(c.Request().Context(), &usecase.CreateOrderInput{
		SellerID:   req.SellerID,
		CustomerID: req.CustomerID,
		VehicleID:  req.VehicleID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.uc.ProjectSummary(order), "Sales order opened successfully")
}

// AttachPayment records the order's payment.
func (h *OrderHandler) AttachPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	paymentDate, err := time.Parse(time.DateOnly, req.PaymentDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "paymentDate must be formatted as YYYY-MM-DD")
	}

	order, err := h.uc.AttachPayment(c.Request().Context(), id, &usecase.PaymentInput{
		PaymentDate: paymentDate,
		Price:       req.Price,
		Method:      entity.PaymentMethod(req.Method),
		Status:      entity.PaymentStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.ProjectSummary(order), "Payment recorded successfully")
}

// Cancel terminates an open order.
func (h *OrderHandler) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.Cancel(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.ProjectSummary(order), "Sales order cancelled successfully")
}

// Get handles a single order lookup.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.ProjectSummary(order), "")
}

// List returns all orders as projected summaries.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	summaries := make([]*usecase.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, h.uc.ProjectSummary(order))
	}

	return response.Success(c, http.StatusOK, summaries, "")
}
