package router

import (
	"luna/internal/handlers/assistant"
	"luna/internal/handlers/booking"
	"luna/internal/handlers/checkout"
	"luna/internal/handlers/health"
	"luna/internal/handlers/property"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "luna/docs" // registers the swagger spec
)

type DomainHandlers struct {
	Health    health.Handler
	Property  property.Handler
	Booking   booking.Handler
	Checkout  checkout.Handler
	Assistant assistant.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Checkout.Router(routerGroup)
		r.DomainHandlers.Assistant.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
