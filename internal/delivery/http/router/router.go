// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scribe/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler *handler.AuthHandler
	BlogHandler *handler.BlogHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler *handler.AuthHandler
	blogHandler *handler.BlogHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler: params.AuthHandler,
		blogHandler: params.BlogHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Blog routes
	blogGroup := e.Group("/blog")
	{
		blogGroup.GET("", r.blogHandler.FindAll)
		blogGroup.GET("/:id", r.blogHandler.FindOne)
		blogGroup.POST("", r.blogHandler.Create)
		blogGroup.PATCH("/:id", r.blogHandler.Update)
		blogGroup.DELETE("/:id", r.blogHandler.Delete)
	}
}
