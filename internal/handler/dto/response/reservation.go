package response

import (
	"log/slog"
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"roomId"`
	RoomNumber      string    `json:"roomNumber"`
	HotelID         uuid.UUID `json:"hotelId"`
	HotelName       string    `json:"hotelName"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail,omitempty"`
	CustomerPhone   string    `json:"customerPhone,omitempty"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	PaymentStatus   string    `json:"paymentStatus"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map reservation view", "error", err)
	}
	return &resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	result := make([]*ReservationResponse, len(views))
	for i, view := range views {
		result[i] = FromReservationView(view)
	}
	return result
}
