package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary Create room
// @Description Register a room under an existing hotel
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.roomCommands.CreateRoom(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get room
// @Description Get room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Update room
// @Description Replace a room's number, rate, capacity and type
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.UpdateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.roomCommands.UpdateRoom(c.Request.Context(), req.ToParams(id)); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete room
// @Description Remove a room; rejected while reservations reference it
// @Tags rooms
// @Param id path string true "Room ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	if err := h.roomCommands.DeleteRoom(c.Request.Context(), id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List hotel rooms
// @Description List a hotel's rooms, optionally filtered by nightly rate bounds
// @Tags rooms
// @Produce json
// @Param id path string true "Hotel ID"
// @Param min_price query int false "Minimum nightly rate in cents"
// @Param max_price query int false "Maximum nightly rate in cents"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Router /hotels/{id}/rooms [get]
func (h *RoomHandler) ListHotelRooms(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	filter, err := parsePriceFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.roomQueries.ListByHotel(c.Request.Context(), hotelID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary List available rooms
// @Description List a hotel's rooms free of non-canceled reservations over a date range
// @Tags rooms
// @Produce json
// @Param id path string true "Hotel ID"
// @Param start query string true "Range start (RFC 3339)"
// @Param end query string true "Range end (RFC 3339)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Router /hotels/{id}/available-rooms [get]
func (h *RoomHandler) ListAvailableRooms(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	start, err := parseRangeBound(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start date",
		})
		return
	}
	end, err := parseRangeBound(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid end date",
		})
		return
	}

	views, err := h.roomQueries.ListAvailable(c.Request.Context(), hotelID, start, end)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrQueryFailed):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "start date must be before end date",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary List room types
// @Description List the distinct room types in use across the chain
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.RoomTypesResponse
// @Router /room-types [get]
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	types, err := h.roomQueries.ListRoomTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.RoomTypesResponse{RoomTypes: types})
}

func (h *RoomHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hotel not found",
		})
	case errs.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errs.Is(err, commands.ErrRoomHasBookings):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room still has reservations",
		})
	case errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	case errs.Is(err, commands.ErrStorageTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": "Storage operation timed out",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parsePriceFilter(c *gin.Context) (queries.RoomPriceFilter, error) {
	var filter queries.RoomPriceFilter
	if minStr := c.Query("min_price"); minStr != "" {
		minCents, err := strconv.ParseInt(minStr, 10, 64)
		if err != nil {
			return filter, errors.New("invalid min_price")
		}
		filter.MinCents = &minCents
	}
	if maxStr := c.Query("max_price"); maxStr != "" {
		maxCents, err := strconv.ParseInt(maxStr, 10, 64)
		if err != nil {
			return filter, errors.New("invalid max_price")
		}
		filter.MaxCents = &maxCents
	}
	return filter, nil
}

func parseRangeBound(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
