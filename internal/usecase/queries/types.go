package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomNumber      string    `json:"room_number"`
	HotelID         uuid.UUID `json:"hotel_id"`
	HotelName       string    `json:"hotel_name"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email,omitempty"`
	CustomerPhone   string    `json:"customer_phone,omitempty"`
	TotalPriceCents int64     `json:"total_price_cents"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RoomView struct {
	ID               uuid.UUID `json:"id"`
	HotelID          uuid.UUID `json:"hotel_id"`
	Number           string    `json:"number"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	Capacity         int32     `json:"capacity"`
	RoomType         string    `json:"room_type"`
	Amenities        string    `json:"amenities,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type HotelView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Chain     string    `json:"chain,omitempty"`
	City      string    `json:"city,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Amenities string    `json:"amenities,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoomPriceFilter bounds the nightly rate; nil means unbounded.
type RoomPriceFilter struct {
	MinCents *int64
	MaxCents *int64
}
