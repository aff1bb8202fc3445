package handler

import (
	"log/slog"
	"net/http"

	"drivefleet/internal/delivery/http/response"
	"drivefleet/internal/domain/entity"
	"drivefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerView is the projection of a customer with its identity.
type CustomerView struct {
	ID      uuid.UUID `json:"id"`
	User    *UserView `json:"user"`
	CPF     string    `json:"cpf"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
}

func toCustomerView(customer *entity.Customer) *CustomerView {
	if customer == nil {
		return nil
	}

	return &CustomerView{
		ID:      customer.ID,
		User:    toUserView(customer.User),
		CPF:     customer.CPF,
		Phone:   customer.Phone,
		Address: customer.Address,
	}
}

// CreateCustomerRequest registers a customer and its identity in one call.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	CPF      string `json:"cpf" validate:"required,len=11,numeric"`
	Phone    string `json:"phone" validate:"required,len=11,numeric"`
	Address  string `json:"address"`
}

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: logger}
}

// Create handles customer registration.
func (h *CustomerHandler) Create(c echo.Context) error {
	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.uc.Create(c.Request().Context(), &usecase.CreateCustomerInput{
		User: usecase.UserInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     entity.RoleCustomer,
		},
		CPF:     req.CPF,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCustomerView(customer), "Customer registered successfully")
}

// Get handles a single customer lookup.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer id")
	}

	customer, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerView(customer), "")
}

// List returns all customers whose identity is still active.
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*CustomerView, 0, len(customers))
	for _, customer := range customers {
		views = append(views, toCustomerView(customer))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Delete excludes the customer's identity.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer excluded successfully")
}
