package router

import (
	"scoop/internal/handlers/booking"
	"scoop/internal/handlers/lifecycle"
	"scoop/internal/handlers/slot"
	"scoop/internal/handlers/visit"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Slot      slot.Handler
	Booking   booking.Handler
	Visit     visit.Handler
	Lifecycle lifecycle.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Slot.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Visit.SeriesRouter(routerGroup)

		routerGroup.Route("/visits", func(visits chi.Router) {
			r.DomainHandlers.Visit.Router(visits)
			r.DomainHandlers.Lifecycle.Router(visits)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
