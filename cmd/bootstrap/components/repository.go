package components

import (
	"hotelier/internal/infra/db"
	"hotelier/internal/infra/readstore"
	"hotelier/internal/infra/repository"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
		),
		fx.Annotate(
			repository.NewHotelRepository,
			fx.As(new(commands.HotelRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(queries.HotelReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
