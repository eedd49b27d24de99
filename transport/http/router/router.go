package router

import (
	"stayhub/internal/handlers/auth"
	"stayhub/internal/handlers/booking"
	"stayhub/internal/handlers/property"
	"stayhub/internal/handlers/report"
	"stayhub/internal/handlers/review"
	"stayhub/internal/handlers/roomtype"
	"stayhub/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Property property.Handler
	RoomType roomtype.Handler
	Booking  booking.Handler
	Report   report.Handler
	Review   review.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
