// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portal/config"
	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/router/handler"
	"portal/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PageHandler     *handler.PageHandler
	GuardMiddleware *middleware.GuardMiddleware
	Recorder        *metrics.Recorder `optional:"true"`
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	pageHandler     *handler.PageHandler
	guardMiddleware *middleware.GuardMiddleware
	recorder        *metrics.Recorder
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		pageHandler:     params.PageHandler,
		guardMiddleware: params.GuardMiddleware,
		recorder:        params.Recorder,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.pageHandler.Health)

	if r.recorder != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.recorder.Handler()))
	}

	// Session actions answer with the JSON envelope; they are never redirected.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.GET("/entity-status", r.authHandler.EntityStatus)
		authGroup.POST("/verification/resend", r.authHandler.ResendVerification)
		authGroup.DELETE("/verification", r.authHandler.CloseVerification)
	}

	// Exempt pages
	e.GET(r.config.Guard.LoginRoute, r.pageHandler.Login)
	e.GET(r.config.Guard.RestrictedRoute, r.pageHandler.AccessRestricted)

	// Guarded pages, one group per configured prefix
	for _, route := range r.config.Guard.Routes {
		group := e.Group(route.Prefix, r.guardMiddleware.Protect)
		if route.Prefix == "/dashboard" {
			group.GET("", r.pageHandler.Dashboard)
		} else {
			group.GET("", r.pageHandler.Protected)
		}
		group.GET("/*", r.pageHandler.Protected)
	}
}
