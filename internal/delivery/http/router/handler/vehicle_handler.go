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

// VehicleView is the projection of a catalog record.
type VehicleView struct {
	ID              uuid.UUID `json:"id"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	YearManufacture int       `json:"yearManufacture"`
	YearModel       int       `json:"yearModel"`
	Plate           string    `json:"plate"`
	Color           string    `json:"color"`
	Mileage         float64   `json:"mileage"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
}

func toVehicleView(vehicle *entity.Vehicle) *VehicleView {
	if vehicle == nil {
		return nil
	}

	return &VehicleView{
		ID:              vehicle.ID,
		Brand:           vehicle.Brand,
		Model:           vehicle.Model,
		YearManufacture: vehicle.YearManufacture,
		YearModel:       vehicle.YearModel,
		Plate:           vehicle.Plate,
		Color:           vehicle.Color,
		Mileage:         vehicle.Mileage,
		Price:           vehicle.Price,
		Status:          string(vehicle.Status),
	}
}

// AddVehicleRequest registers a vehicle into the catalog.
type AddVehicleRequest struct {
	Brand           string  `json:"brand" validate:"required"`
	Model           string  `json:"model" validate:"required"`
	YearManufacture int     `json:"yearManufacture" validate:"required,gte=1900"`
	YearModel       int     `json:"yearModel" validate:"required,gte=1900"`
	Plate           string  `json:"plate" validate:"required"`
	Color           string  `json:"color"`
	Mileage         float64 `json:"mileage" validate:"gte=0"`
	Price           float64 `json:"price" validate:"required,gt=0"`
}

// VehicleHandler holds dependencies for vehicle-related handlers.
type VehicleHandler struct {
	uc     usecase.VehicleUsecase
	logger *slog.Logger
}

// NewVehicleHandler is the constructor for VehicleHandler, injected by Fx.
func NewVehicleHandler(uc usecase.VehicleUsecase, logger *slog.Logger) *VehicleHandler {
	return &VehicleHandler{uc: uc, logger: logger}
}

// Add handles vehicle registration.
func (h *VehicleHandler) Add(c echo.Context) error {
	var req AddVehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vehicle input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	vehicle, err := h.uc.Add(c.Request().Context(), &usecase.AddVehicleInput{
		Brand:           req.Brand,
		Model:           req.Model,
		YearManufacture: req.YearManufacture,
		YearModel:       req.YearModel,
		Plate:           req.Plate,
		Color:           req.Color,
		Mileage:         req.Mileage,
		Price:           req.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toVehicleView(vehicle), "Vehicle added successfully")
}

// Get handles a single vehicle lookup.
func (h *VehicleHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid vehicle id")
	}

	vehicle, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVehicleView(vehicle), "")
}

// List returns the whole catalog.
func (h *VehicleHandler) List(c echo.Context) error {
	vehicles, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*VehicleView, 0, len(vehicles))
	for _, vehicle := range vehicles {
		views = append(views, toVehicleView(vehicle))
	}

	return response.Success(c, http.StatusOK, views, "")
}
