package components

import (
	"booking-crm/internal/handler"
	"booking-crm/internal/handler/api"
	"booking-crm/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCommentHandler,
		api.NewAdminHandler,
		api.NewPortalHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	comment *api.CommentHandler,
	admin *api.AdminHandler,
	portal *api.PortalHandler,
	dashboard *api.DashboardHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Booking:   booking,
		Comment:   comment,
		Admin:     admin,
		Portal:    portal,
		Dashboard: dashboard,
	}
}
