//go:build unit

package response_test

import (
	"testing"
	"time"

	"hotelier/internal/handler/dto/response"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFromReservationView(t *testing.T) {
	view := &queries.ReservationView{
		ID:              uuid.New(),
		RoomID:          uuid.New(),
		RoomNumber:      "101",
		HotelID:         uuid.New(),
		HotelName:       "Grand Plaza",
		StartDate:       time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 6, 12, 11, 0, 0, 0, time.UTC),
		CustomerName:    "Alice Morgan",
		CustomerEmail:   "alice@example.com",
		TotalPriceCents: 24000,
		PaymentStatus:   "Pending",
		CreatedAt:       time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	resp := response.FromReservationView(view)

	assert.Equal(t, view.ID, resp.ID)
	assert.Equal(t, view.RoomID, resp.RoomID)
	assert.Equal(t, view.RoomNumber, resp.RoomNumber)
	assert.Equal(t, view.HotelName, resp.HotelName)
	assert.Equal(t, view.StartDate, resp.StartDate)
	assert.Equal(t, view.EndDate, resp.EndDate)
	assert.Equal(t, view.CustomerName, resp.CustomerName)
	assert.Equal(t, view.CustomerEmail, resp.CustomerEmail)
	assert.Equal(t, view.TotalPriceCents, resp.TotalPriceCents)
	assert.Equal(t, view.PaymentStatus, resp.PaymentStatus)
}

func TestFromRoomView(t *testing.T) {
	view := &queries.RoomView{
		ID:               uuid.New(),
		HotelID:          uuid.New(),
		Number:           "204",
		NightlyRateCents: 15000,
		Capacity:         3,
		RoomType:         "Suite",
		Amenities:        "balcony,minibar",
	}

	resp := response.FromRoomView(view)

	assert.Equal(t, view.ID, resp.ID)
	assert.Equal(t, view.HotelID, resp.HotelID)
	assert.Equal(t, view.Number, resp.Number)
	assert.Equal(t, view.NightlyRateCents, resp.NightlyRateCents)
	assert.Equal(t, view.Capacity, resp.Capacity)
	assert.Equal(t, view.RoomType, resp.RoomType)
	assert.Equal(t, view.Amenities, resp.Amenities)
}

func TestFromHotelView(t *testing.T) {
	view := &queries.HotelView{
		ID:    uuid.New(),
		Name:  "Grand Plaza",
		Chain: "Plaza Group",
		City:  "Lisbon",
		Email: "front@grandplaza.example",
	}

	resp := response.FromHotelView(view)

	assert.Equal(t, view.ID, resp.ID)
	assert.Equal(t, view.Name, resp.Name)
	assert.Equal(t, view.Chain, resp.Chain)
	assert.Equal(t, view.City, resp.City)
	assert.Equal(t, view.Email, resp.Email)
}

func TestFromReservationViews(t *testing.T) {
	views := []*queries.ReservationView{
		{ID: uuid.New(), CustomerName: "Alice Morgan"},
		{ID: uuid.New(), CustomerName: "Bob Ellis"},
	}

	resps := response.FromReservationViews(views)

	assert.Len(t, resps, 2)
	assert.Equal(t, views[0].ID, resps[0].ID)
	assert.Equal(t, views[1].CustomerName, resps[1].CustomerName)
}
