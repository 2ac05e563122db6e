package components

import (
	"booking-crm/internal/domain/booking"
	"booking-crm/internal/infra/metrics"
	"booking-crm/internal/infra/realtime"
	"booking-crm/internal/pkg/clock"
	"booking-crm/internal/pkg/config"
	"booking-crm/internal/usecase"
	"booking-crm/internal/usecase/commands"
	"booking-crm/internal/usecase/queries"
	"booking-crm/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
	fx.Annotate(
		func(broker *realtime.CommentBroker) *realtime.CommentBroker { return broker },
		fx.As(new(commands.CommentPublisher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAdminCommands,
		commands.NewCommentCommands,
		NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewCommentQueries,
		queries.NewPortalQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	m *metrics.Metrics,
	clk clock.Clock,
	cfg config.Config,
) commands.BookingCommands {
	return commands.NewBookingCommands(uow, factory, bookingQueries, m, clk, cfg.Portal.TokenTTL)
}
