// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"drivefleet/internal/delivery/http/middleware"
	"drivefleet/internal/delivery/http/router/handler"
	"drivefleet/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CustomerHandler *handler.CustomerHandler
	SellerHandler   *handler.SellerHandler
	VehicleHandler  *handler.VehicleHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	customerHandler *handler.CustomerHandler
	sellerHandler   *handler.SellerHandler
	vehicleHandler  *handler.VehicleHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		customerHandler: params.CustomerHandler,
		sellerHandler:   params.SellerHandler,
		vehicleHandler:  params.VehicleHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)
	}

	requireAdmin := r.authMiddleware.RequireRole(string(entity.RoleAdmin))

	customerGroup := e.Group("/customers")
	{
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.GET("", r.customerHandler.List)
		customerGroup.GET("/:id", r.customerHandler.Get)
		// Exclusion is destructive; only administrators may trigger it.
		customerGroup.DELETE("/:id", r.customerHandler.Delete, r.authMiddleware.Authenticate, requireAdmin)
	}

	sellerGroup := e.Group("/sellers")
	{
		sellerGroup.POST("", r.sellerHandler.Create)
		sellerGroup.GET("", r.sellerHandler.List)
		sellerGroup.GET("/:id", r.sellerHandler.Get)
		sellerGroup.PUT("/:id", r.sellerHandler.Update)
		sellerGroup.DELETE("/:id", r.sellerHandler.Delete, r.authMiddleware.Authenticate, requireAdmin)
	}

	vehicleGroup := e.Group("/vehicles")
	{
		vehicleGroup.POST("", r.vehicleHandler.Add)
		vehicleGroup.GET("", r.vehicleHandler.List)
		vehicleGroup.GET("/:id", r.vehicleHandler.Get)
	}

	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.POST("/:id/payment", r.orderHandler.AttachPayment)
		orderGroup.POST("/:id/cancel", r.orderHandler.Cancel)
	}
}
