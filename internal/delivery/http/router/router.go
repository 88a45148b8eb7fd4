// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.accountHandler.CreateAccount)
		userGroup.GET("", r.accountHandler.ListAccounts)
		userGroup.GET("/:id", r.accountHandler.GetAccount)
		userGroup.DELETE("/:id", r.accountHandler.DeleteAccount)
		userGroup.POST("/auth/login", r.accountHandler.Login)
	}
}
