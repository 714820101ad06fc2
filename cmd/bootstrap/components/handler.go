package components

import (
	"resort-booking/internal/handler"
	"resort-booking/internal/handler/api"
	"resort-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewServiceHandler,
		api.NewBookingHandler,
		api.NewEventHandler,
		api.NewReviewHandler,
		api.NewCartHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	service *api.ServiceHandler,
	booking *api.BookingHandler,
	event *api.EventHandler,
	review *api.ReviewHandler,
	cart *api.CartHandler,
	profile *api.ProfileHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Service: service,
		Booking: booking,
		Event:   event,
		Review:  review,
		Cart:    cart,
		Profile: profile,
	}
}
