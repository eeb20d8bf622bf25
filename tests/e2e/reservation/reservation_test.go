//go:build e2e

package reservation_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"hotelier/internal/handler/dto/response"
	"hotelier/tests/common/builder"
	"hotelier/tests/common/dbtest"
	"hotelier/tests/common/httptest"
	"hotelier/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.ResetTables()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) seedRoom() uuid.UUID {
	hotelID := dbtest.CreateTestHotel(s.T(), s.DB, "Grand Plaza", "Lisbon")
	return dbtest.CreateTestRoom(s.T(), s.DB, hotelID, "101", 12000)
}

// =============================================================================
// TestCreateReservation
// =============================================================================

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("Normal case: booking a free room computes the price", func() {
		t := s.T()
		roomID := s.seedRoom()

		reqBody := builder.NewReservationBuilder().WithRoomID(roomID).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.CreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.ID)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, dw.Code)

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &actual))
		// two nights at the seeded 12000 rate
		require.Equal(t, int64(24000), actual.TotalPriceCents)
		require.Equal(t, "Pending", actual.PaymentStatus)
		require.Equal(t, "101", actual.RoomNumber)
		require.Equal(t, "Grand Plaza", actual.HotelName)
	})

	s.Run("Error case: overlapping booking is rejected", func() {
		t := s.T()
		roomID := s.seedRoom()
		b := builder.NewReservationBuilder().WithRoomID(roomID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, b.BuildCreateRequestDTO())
		require.Equal(t, http.StatusCreated, w.Code)

		overlapping := b.WithStay(
			time.Date(2026, 6, 11, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 13, 11, 0, 0, 0, time.UTC),
		).BuildCreateRequestDTO()

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, overlapping)
		require.Equal(t, http.StatusConflict, cw.Code)
	})

	s.Run("Error case: a stay sharing a boundary instant is rejected", func() {
		t := s.T()
		roomID := s.seedRoom()
		end := time.Date(2026, 6, 12, 11, 0, 0, 0, time.UTC)
		dbtest.CreateTestReservation(s.T(), s.DB, roomID,
			time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC), end, "Alice Morgan", "Confirmed")

		adjacent := builder.NewReservationBuilder().WithRoomID(roomID).
			WithStay(end, end.Add(48*time.Hour)).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, adjacent)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Normal case: canceling a booking frees the room", func() {
		t := s.T()
		roomID := s.seedRoom()
		b := builder.NewReservationBuilder().WithRoomID(roomID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, b.BuildCreateRequestDTO())
		require.Equal(t, http.StatusCreated, w.Code)
		var created response.CreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		pw := httptest.PerformRequest(t, s.Router, http.MethodPut,
			reservationsURL+"/"+created.ID.String()+"/payment-status",
			map[string]any{"payment_status": "Canceled"})
		require.Equal(t, http.StatusNoContent, pw.Code)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, b.BuildCreateRequestDTO())
		require.Equal(t, http.StatusCreated, rw.Code)
	})

	s.Run("Error case: booking an unknown room returns 404", func() {
		t := s.T()
		s.seedRoom()

		reqBody := builder.NewReservationBuilder().WithRoomID(uuid.New()).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestUpdateReservation
// =============================================================================

func (s *ReservationSuite) TestUpdateReservation() {
	s.Run("Normal case: shifting a stay within its own window succeeds", func() {
		t := s.T()
		roomID := s.seedRoom()
		b := builder.NewReservationBuilder().WithRoomID(roomID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, b.BuildCreateRequestDTO())
		require.Equal(t, http.StatusCreated, w.Code)
		var created response.CreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		shifted := b.WithStay(
			time.Date(2026, 6, 11, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 14, 11, 0, 0, 0, time.UTC),
		).BuildCreateRequestDTO()

		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+"/"+created.ID.String(), shifted)
		require.Equal(t, http.StatusNoContent, uw.Code)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, dw.Code)

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &actual))
		// price recomputed for three nights
		require.Equal(t, int64(36000), actual.TotalPriceCents)
	})

	s.Run("Error case: shifting onto another booking is rejected", func() {
		t := s.T()
		roomID := s.seedRoom()
		b := builder.NewReservationBuilder().WithRoomID(roomID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, b.BuildCreateRequestDTO())
		require.Equal(t, http.StatusCreated, w.Code)
		var created response.CreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		dbtest.CreateTestReservation(s.T(), s.DB, roomID,
			time.Date(2026, 6, 14, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 16, 11, 0, 0, 0, time.UTC),
			"Bob Chen", "Confirmed")

		colliding := b.WithStay(
			time.Date(2026, 6, 13, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 15, 11, 0, 0, 0, time.UTC),
		).BuildCreateRequestDTO()

		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+"/"+created.ID.String(), colliding)
		require.Equal(t, http.StatusConflict, uw.Code)
	})
}

// =============================================================================
// TestConcurrentBooking - races against the real exclusion constraint
// =============================================================================

func (s *ReservationSuite) TestConcurrentBooking() {
	s.Run("Concurrency: simultaneous bookings admit exactly one winner", func() {
		t := s.T()
		roomID := s.seedRoom()
		reqBody := builder.NewReservationBuilder().WithRoomID(roomID).BuildCreateRequestDTO()

		const attempts = 8
		var wg sync.WaitGroup
		codes := make(chan int, attempts)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		var created, conflicted int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Fatalf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, created)
		require.Equal(t, attempts-1, conflicted)
	})
}

// =============================================================================
// TestAvailabilityQueries
// =============================================================================

func (s *ReservationSuite) TestAvailabilityQueries() {
	s.Run("Normal case: available-rooms omits occupied rooms", func() {
		t := s.T()
		hotelID := dbtest.CreateTestHotel(s.T(), s.DB, "Grand Plaza", "Lisbon")
		occupiedID := dbtest.CreateTestRoom(s.T(), s.DB, hotelID, "101", 12000)
		freeID := dbtest.CreateTestRoom(s.T(), s.DB, hotelID, "102", 15000)

		dbtest.CreateTestReservation(s.T(), s.DB, occupiedID,
			time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 12, 11, 0, 0, 0, time.UTC),
			"Alice Morgan", "Confirmed")

		url := "/api/hotels/" + hotelID.String() + "/available-rooms?start=2026-06-11&end=2026-06-13"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rooms []response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		require.Len(t, rooms, 1)
		require.Equal(t, freeID, rooms[0].ID)
	})

	s.Run("Normal case: canceled bookings do not occupy rooms", func() {
		t := s.T()
		hotelID := dbtest.CreateTestHotel(s.T(), s.DB, "Grand Plaza", "Lisbon")
		roomID := dbtest.CreateTestRoom(s.T(), s.DB, hotelID, "101", 12000)

		dbtest.CreateTestReservation(s.T(), s.DB, roomID,
			time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 12, 11, 0, 0, 0, time.UTC),
			"Alice Morgan", "Canceled")

		url := "/api/hotels/" + hotelID.String() + "/available-rooms?start=2026-06-11&end=2026-06-13"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rooms []response.RoomResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rooms))
		require.Len(t, rooms, 1)
	})

	s.Run("Normal case: search by customer matches partial names", func() {
		t := s.T()
		roomID := s.seedRoom()
		dbtest.CreateTestReservation(s.T(), s.DB, roomID,
			time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 12, 11, 0, 0, 0, time.UTC),
			"Alice Morgan", "Confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?customer=morg", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var found []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &found))
		require.Len(t, found, 1)
		require.Equal(t, "Alice Morgan", found[0].CustomerName)
	})
}
