package router

import (
	"dormy/internal/handlers/auth"
	"dormy/internal/handlers/like"
	"dormy/internal/handlers/listing"
	"dormy/internal/handlers/media"
	"dormy/internal/handlers/otp"
	"dormy/internal/handlers/reservation"
	"dormy/internal/handlers/user"
	"dormy/internal/handlers/verification"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	OTP          otp.Handler
	User         user.Handler
	Listing      listing.Handler
	Reservation  reservation.Handler
	Verification verification.Handler
	Like         like.Handler
	Media        media.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.OTP.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Listing.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Verification.Router(routerGroup)
		r.DomainHandlers.Like.Router(routerGroup)
		r.DomainHandlers.Media.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
