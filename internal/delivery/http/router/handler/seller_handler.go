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

// SellerResponse is the projection of a seller with its identity.
type SellerResponse struct {
	ID                 uuid.UUID               `json:"id"`
	User               *UserView               `json:"user"`
	RegistrationNumber int64                   `json:"registrationNumber"`
	Orders             []*usecase.OrderSummary `json:"orders,omitempty"`
}

func toSellerResponse(seller *entity.Seller, orders []*usecase.OrderSummary) *SellerResponse {
	if seller == nil {
		return nil
	}

	return &SellerResponse{
		ID:                 seller.ID,
		User:               toUserView(seller.User),
		RegistrationNumber: seller.RegistrationNumber,
		Orders:             orders,
	}
}

// SellerRequest carries the identity fields of a seller registration or update.
// The registration number is generated server-side and never accepted as input.
type SellerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SellerHandler holds dependencies for seller-related handlers.
type SellerHandler struct {
	uc     usecase.SellerUsecase
	logger *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase, logger *slog.Logger) *SellerHandler {
	return &SellerHandler{uc: uc, logger: logger}
}

// Create handles seller registration.
func (h *SellerHandler) Create(c echo.Context) error {
	var req SellerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	seller, err := h.uc.Create(c.Request().Context(), &usecase.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.RoleSeller,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSellerResponse(seller, nil), "Seller registered successfully")
}

// Update forwards the identity fields of an existing seller.
func (h *SellerHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	var req SellerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	seller, err := h.uc.Update(c.Request().Context(), id, &usecase.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSellerResponse(seller, nil), "Seller updated successfully")
}

// Get handles a single seller lookup.
func (h *SellerHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	seller, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSellerResponse(seller, nil), "")
}

// List returns active sellers, each with its projected order history.
func (h *SellerHandler) List(c echo.Context) error {
	views, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*SellerResponse, 0, len(views))
	for _, view := range views {
		out = append(out, toSellerResponse(view.Seller, view.Orders))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Delete excludes the seller's identity unless any order references it.
func (h *SellerHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Seller excluded successfully")
}
