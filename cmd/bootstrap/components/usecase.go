package components

import (
	"hotelier/internal/domain/reservation"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/config"
	"hotelier/internal/pkg/roomlock"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	roomlock.NewKeyed,
	fx.Annotate(
		reservation.NewNightlyRateCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			reservationRepo commands.ReservationRepository,
			roomRepo commands.RoomRepository,
			priceCalc reservation.PriceCalculator,
			locks *roomlock.Keyed,
			clk clock.Clock,
			cfg config.Config,
		) commands.ReservationCommands {
			return commands.NewReservationCommands(reservationRepo, roomRepo, priceCalc, locks, clk, cfg.DB.QueryTimeout)
		},
		func(roomRepo commands.RoomRepository, hotelRepo commands.HotelRepository, clk clock.Clock, cfg config.Config) commands.RoomCommands {
			return commands.NewRoomCommands(roomRepo, hotelRepo, clk, cfg.DB.QueryTimeout)
		},
		func(hotelRepo commands.HotelRepository, clk clock.Clock, cfg config.Config) commands.HotelCommands {
			return commands.NewHotelCommands(hotelRepo, clk, cfg.DB.QueryTimeout)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewRoomQueries,
		queries.NewHotelQueries,
	),
)
