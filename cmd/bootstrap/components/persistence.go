package components

import (
	"booking-crm/internal/infra/db"
	"booking-crm/internal/infra/readstore"
	"booking-crm/internal/infra/repository"
	"booking-crm/internal/infra/uow"
	"booking-crm/internal/usecase/queries"
	"booking-crm/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserRepository)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.PortalReadStore)),
			fx.As(new(queries.BookingStatsReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewCommentReadStore,
			fx.As(new(queries.CommentReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
