//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/handler/api"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
	"hotelier/tests/common/builder"
	"hotelier/tests/common/httptest"
	commandsmock "hotelier/tests/mock/commands"
	queriesmock "hotelier/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations", s.handler.SearchReservations)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.PUT("/reservations/:id", s.handler.UpdateReservation)
	s.router.DELETE("/reservations/:id", s.handler.DeleteReservation)
	s.router.PUT("/reservations/:id/payment-status", s.handler.SetPaymentStatus)
	s.router.GET("/rooms/:id/reservations", s.handler.ListRoomReservations)
	s.router.GET("/hotels/:id/reservations", s.handler.ListHotelReservations)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the new id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		s.Equal(http.StatusCreated, rec.Code)
		var body resdto.CreatedResponse
		s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal(newID, body.ID)
	})

	s.Run("error: malformed body returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"room_id": "not-a-uuid"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: missing customer name returns 400", func() {
		invalid := builder.NewReservationBuilder().BuildCreateRequestDTO()
		invalid.CustomerName = ""
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, invalid)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unknown room returns 404", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: occupied room returns 409", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrRoomUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: domain validation returns 422", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: storage timeout returns 504", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrStorageTimeout).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusGatewayTimeout, rec.Code)
	})

	s.Run("error: marked validation failure returns 422", func() {
		// the usecase attaches its sentinel with errs.Mark, not by wrapping
		marked := errs.Mark(reservation.ErrInvalidStayRange, commands.ErrDomainValidation)
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, marked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: marked storage timeout returns 504", func() {
		marked := errs.Mark(errs.New("query canceled"), commands.ErrStorageTimeout)
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, marked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusGatewayTimeout, rec.Code)
	})

	s.Run("error: infrastructure failure returns 500", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 200 with the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil)

		s.Equal(http.StatusOK, rec.Code)
		var body resdto.ReservationResponse
		s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal(view.ID, body.ID)
		s.Equal(view.CustomerName, body.CustomerName)
		s.Equal(view.TotalPriceCents, body.TotalPriceCents)
	})

	s.Run("error: malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unknown id returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestUpdateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdateReservation() {
	id := uuid.New()
	url := "/reservations/" + id.String()
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.UpdateReservationParams) error {
				s.Equal(id, p.ID)
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown reservation returns 404", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), gomock.Any()).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: occupied room returns 409", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), gomock.Any()).
			Return(commands.ErrRoomUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		s.Equal(http.StatusConflict, rec.Code)
	})
}

// ================================================================================
// TestSetPaymentStatus
// ================================================================================

func (s *ReservationHandlerTestSuite) TestSetPaymentStatus() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/payment-status"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().SetPaymentStatus(gomock.Any(), id, "Paid").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"payment_status": "Paid"})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: missing status returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unknown status returns 422", func() {
		s.mockCommands.EXPECT().SetPaymentStatus(gomock.Any(), id, "Refunded").
			Return(commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"payment_status": "Refunded"})
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

// ================================================================================
// TestDeleteReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestDeleteReservation() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown reservation returns 404", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), id).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestListEndpoints
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListEndpoints() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("search by customer returns 200", func() {
		s.mockQueries.EXPECT().SearchByCustomer(gomock.Any(), "Alice").
			Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?customer=Alice", nil)

		s.Equal(http.StatusOK, rec.Code)
		var body []resdto.ReservationResponse
		s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Len(body, 1)
	})

	s.Run("search without customer returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("list by room returns 200", func() {
		s.mockQueries.EXPECT().ListByRoom(gomock.Any(), view.RoomID).
			Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+view.RoomID.String()+"/reservations", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("list by hotel on date returns 200", func() {
		s.mockQueries.EXPECT().ListByHotelOnDate(gomock.Any(), view.HotelID, gomock.Any()).
			Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/"+view.HotelID.String()+"/reservations?on=2026-06-11", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("list by hotel with malformed date returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/"+view.HotelID.String()+"/reservations?on=June-11", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
