package api

import (
	"net/http"

	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelHandler struct {
	hotelCommands commands.HotelCommands
	hotelQueries  queries.HotelQueries
}

func NewHotelHandler(hotelCommands commands.HotelCommands, hotelQueries queries.HotelQueries) *HotelHandler {
	return &HotelHandler{
		hotelCommands: hotelCommands,
		hotelQueries:  hotelQueries,
	}
}

// @Summary Create hotel
// @Description Register a hotel in the chain
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.CreateHotelRequest true "Hotel request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotels [post]
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.hotelCommands.CreateHotel(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get hotel
// @Description Get hotel by ID
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetHotel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	view, err := h.hotelQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary List hotels
// @Description List every hotel in the chain
// @Tags hotels
// @Produce json
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c *gin.Context) {
	views, err := h.hotelQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelViews(views))
}

// @Summary Update hotel
// @Description Replace a hotel's name and contact details
// @Tags hotels
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Hotel request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotels/{id} [put]
func (h *HotelHandler) UpdateHotel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	var req reqdto.UpdateHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.hotelCommands.UpdateHotel(c.Request.Context(), req.ToParams(id)); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete hotel
// @Description Remove a hotel; rejected while rooms reference it
// @Tags hotels
// @Param id path string true "Hotel ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotels/{id} [delete]
func (h *HotelHandler) DeleteHotel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	if err := h.hotelCommands.DeleteHotel(c.Request.Context(), id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HotelHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hotel not found",
		})
	case errs.Is(err, commands.ErrHotelHasRooms):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Hotel still has rooms",
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
