package components

import (
	"hotelier/internal/handler"
	"hotelier/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewRoomHandler,
		api.NewHotelHandler,
	),
	fx.Invoke(handler.NewRouter),
)
