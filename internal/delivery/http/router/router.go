// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"enroll/config"
	"enroll/internal/delivery/http/router/handler"
	"enroll/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const defaultPrefix = "/api"

type RouterParams struct {
	fx.In

	Config            *config.Config
	AccountHandler    *handler.AccountHandler
	EnrollmentHandler *handler.EnrollmentHandler
	Registry          *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	prefix            string
	accountHandler    *handler.AccountHandler
	enrollmentHandler *handler.EnrollmentHandler
	registry          *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	prefix := defaultPrefix
	if params.Config != nil && params.Config.HTTP.Prefix != "" {
		prefix = params.Config.HTTP.Prefix
	}

	return &router{
		prefix:            prefix,
		accountHandler:    params.AccountHandler,
		enrollmentHandler: params.EnrollmentHandler,
		registry:          params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))
	}

	api := e.Group(r.prefix)
	{
		api.POST("/register", r.accountHandler.Register)
		api.POST("/confirm", r.accountHandler.Confirm)
		api.POST("/login", r.accountHandler.Login)
		api.POST("/projects/apply", r.enrollmentHandler.Apply)
	}
}
