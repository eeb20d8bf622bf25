package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelier/internal/handler/api"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, reservationHandler *api.ReservationHandler, roomHandler *api.RoomHandler, hotelHandler *api.HotelHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, roomHandler, hotelHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reservationHandler *api.ReservationHandler, roomHandler *api.RoomHandler, hotelHandler *api.HotelHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.SearchReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.UpdateReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.DeleteReservation},
				{Method: http.MethodPut, Path: "/:id/payment-status", Handler: reservationHandler.SetPaymentStatus},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateRoom},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
				{Method: http.MethodPut, Path: "/:id", Handler: roomHandler.UpdateRoom},
				{Method: http.MethodDelete, Path: "/:id", Handler: roomHandler.DeleteRoom},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: reservationHandler.ListRoomReservations},
			})
		}

		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodPost, Path: "", Handler: hotelHandler.CreateHotel},
				{Method: http.MethodGet, Path: "", Handler: hotelHandler.ListHotels},
				{Method: http.MethodGet, Path: "/:id", Handler: hotelHandler.GetHotel},
				{Method: http.MethodPut, Path: "/:id", Handler: hotelHandler.UpdateHotel},
				{Method: http.MethodDelete, Path: "/:id", Handler: hotelHandler.DeleteHotel},
				{Method: http.MethodGet, Path: "/:id/rooms", Handler: roomHandler.ListHotelRooms},
				{Method: http.MethodGet, Path: "/:id/available-rooms", Handler: roomHandler.ListAvailableRooms},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: reservationHandler.ListHotelReservations},
			})
		}

		apiGroup.GET("/room-types", roomHandler.ListRoomTypes)
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
