// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"musea/internal/delivery/http/middleware"
	"musea/internal/delivery/http/router/handler"
	"musea/internal/infra/metrics"
)

// RouterParams bundles everything the route table needs, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ExhibitionHandler  *handler.ExhibitionHandler
	TicketTypeHandler  *handler.TicketTypeHandler
	TicketHandler      *handler.TicketHandler
	ChatHandler        *handler.ChatHandler
	TestimonialHandler *handler.TestimonialHandler
	AnalyticsHandler   *handler.AnalyticsHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	Metrics             *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.Use(r.params.RequestIDMiddleware.Handle)

	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.params.Metrics.Handler()))

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.GET("/me", r.params.AuthHandler.Me, auth.Authenticate)
	}

	// Exhibition catalog, public reads and admin writes
	exhibitionGroup := api.Group("/exhibitions")
	{
		exhibitionGroup.GET("", r.params.ExhibitionHandler.List)
		exhibitionGroup.GET("/featured", r.params.ExhibitionHandler.ListFeatured)
		exhibitionGroup.GET("/:id", r.params.ExhibitionHandler.Get)
		exhibitionGroup.POST("", r.params.ExhibitionHandler.Create, auth.Authenticate, auth.RequireAdmin)
		exhibitionGroup.PUT("/:id", r.params.ExhibitionHandler.Update, auth.Authenticate, auth.RequireAdmin)
		exhibitionGroup.DELETE("/:id", r.params.ExhibitionHandler.Delete, auth.Authenticate, auth.RequireAdmin)
	}

	// Ticket products, public reads and admin writes
	ticketTypeGroup := api.Group("/ticket-types")
	{
		ticketTypeGroup.GET("", r.params.TicketTypeHandler.List)
		ticketTypeGroup.GET("/:id", r.params.TicketTypeHandler.Get)
		ticketTypeGroup.POST("", r.params.TicketTypeHandler.Create, auth.Authenticate, auth.RequireAdmin)
		ticketTypeGroup.PUT("/:id", r.params.TicketTypeHandler.Update, auth.Authenticate, auth.RequireAdmin)
		ticketTypeGroup.DELETE("/:id", r.params.TicketTypeHandler.Delete, auth.Authenticate, auth.RequireAdmin)
	}

	// Ticket lifecycle, all authenticated
	ticketGroup := api.Group("/tickets")
	ticketGroup.Use(auth.Authenticate)
	{
		ticketGroup.POST("", r.params.TicketHandler.Purchase)
		ticketGroup.GET("", r.params.TicketHandler.List)
		ticketGroup.GET("/:id", r.params.TicketHandler.Get)
		ticketGroup.DELETE("/:id", r.params.TicketHandler.Cancel)
		ticketGroup.PUT("/:id/use", r.params.TicketHandler.Use, auth.RequireAdmin)
	}

	api.POST("/payments/process", r.params.TicketHandler.ProcessPayment, auth.Authenticate)

	// Booking assistant, open to anonymous visitors
	chatGroup := api.Group("/chat")
	{
		chatGroup.POST("/start", r.params.ChatHandler.Start, auth.OptionalAuthenticate)
		chatGroup.POST("/message", r.params.ChatHandler.SendMessage)
		chatGroup.GET("/:id", r.params.ChatHandler.Get)
	}

	// Testimonials
	testimonialGroup := api.Group("/testimonials")
	{
		testimonialGroup.GET("", r.params.TestimonialHandler.List)
		testimonialGroup.POST("", r.params.TestimonialHandler.Submit, auth.Authenticate)
		testimonialGroup.PUT("/:id/approve", r.params.TestimonialHandler.Approve, auth.Authenticate, auth.RequireAdmin)
	}

	// Admin dashboard
	analyticsGroup := api.Group("/analytics")
	analyticsGroup.Use(auth.Authenticate, auth.RequireAdmin)
	{
		analyticsGroup.GET("", r.params.AnalyticsHandler.List)
		analyticsGroup.POST("", r.params.AnalyticsHandler.Record)
	}
}
