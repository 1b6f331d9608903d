package router

import (
	"airline/internal/handlers/auth"
	"airline/internal/handlers/flight"
	"airline/internal/handlers/health"
	"airline/internal/handlers/reservation"
	"airline/internal/handlers/seat"
	"airline/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Flight      flight.Handler
	Seat        seat.Handler
	Reservation reservation.Handler
	Health      *health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts every route. Authentication and role checks run on the whole tree and
// consult the permission table by route pattern.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.RateLimit())
	router.Use(r.AuthRole.APIKey)
	router.Use(r.AuthRole.Auth)
	router.Use(r.AuthRole.RBAC)

	r.DomainHandlers.Health.Router(router)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Route("/flights", func(flights chi.Router) {
			r.DomainHandlers.Flight.Router(flights)
			r.DomainHandlers.Seat.Router(flights)
		})

		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
