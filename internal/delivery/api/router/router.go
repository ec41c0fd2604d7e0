// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"trackio/internal/delivery/api/middleware"
	"trackio/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	TrackingHandler *handler.TrackingHandler
	DeviceHandler   *handler.DeviceHandler
	PositionHandler *handler.PositionHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	trackingHandler *handler.TrackingHandler
	deviceHandler   *handler.DeviceHandler
	positionHandler *handler.PositionHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		trackingHandler: params.TrackingHandler,
		deviceHandler:   params.DeviceHandler,
		positionHandler: params.PositionHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.Signup)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/password/forgot", r.accountHandler.ForgotPassword)
		authGroup.POST("/password/reset", r.accountHandler.ResetPassword)
		authGroup.POST("/callback", r.accountHandler.ExchangeCode)
		authGroup.POST("/logout", r.accountHandler.Logout, r.authMiddleware.Authenticate)
	}

	accountGroup := e.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.PUT("/password", r.accountHandler.ChangePassword)
		accountGroup.PUT("/email", r.accountHandler.ChangeEmail)
	}

	// Tracking-service proxy, all routes act on the caller's stored session
	traccarGroup := e.Group("/api/traccar")
	traccarGroup.Use(r.authMiddleware.Authenticate)
	{
		traccarGroup.POST("/refresh-session", r.trackingHandler.RefreshSession)

		traccarGroup.GET("/devices", r.deviceHandler.ListDevices)
		traccarGroup.POST("/devices", r.deviceHandler.CreateDevice)
		traccarGroup.GET("/devices/:id", r.deviceHandler.GetDevice)
		traccarGroup.PUT("/devices/:id", r.deviceHandler.UpdateDevice)
		traccarGroup.DELETE("/devices/:id", r.deviceHandler.DeleteDevice)

		traccarGroup.GET("/positions", r.positionHandler.GetPositions)
	}
}
