//go:build unit || e2e

package builder

import (
	"time"

	domres "hotelier/internal/domain/reservation"
	reqdto "hotelier/internal/handler/dto/request"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	RoomID          uuid.UUID
	RoomNumber      string
	HotelID         uuid.UUID
	HotelName       string
	StartDate       time.Time
	EndDate         time.Time
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	TotalPriceCents *int64
	PaymentStatus   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		RoomID:        uuid.New(),
		RoomNumber:    "101",
		HotelID:       uuid.New(),
		HotelName:     "Grand Plaza",
		StartDate:     time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 6, 12, 11, 0, 0, 0, time.UTC),
		CustomerName:  "Alice Morgan",
		CustomerEmail: "alice@example.com",
		CustomerPhone: "+1-555-0100",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	stay, err := domres.NewStayRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	guest, err := domres.NewGuest(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return nil, err
	}
	var price domres.Money
	if b.TotalPriceCents != nil {
		price, err = domres.NewMoney(*b.TotalPriceCents)
		if err != nil {
			return nil, err
		}
	}
	var status domres.PaymentStatus
	if b.PaymentStatus != nil {
		status = domres.PaymentStatus(*b.PaymentStatus)
	}
	return domres.NewReservation(b.RoomID, stay, guest, price, status)
}

func (b *ReservationBuilder) BuildCreateParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		RoomID:          b.RoomID,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		TotalPriceCents: b.TotalPriceCents,
		PaymentStatus:   b.PaymentStatus,
	}
}

func (b *ReservationBuilder) BuildUpdateParams(id uuid.UUID) commands.UpdateReservationParams {
	return commands.UpdateReservationParams{
		ID:                      id,
		CreateReservationParams: b.BuildCreateParams(),
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:          b.RoomID,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		TotalPriceCents: b.TotalPriceCents,
		PaymentStatus:   b.PaymentStatus,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	status := "Pending"
	if b.PaymentStatus != nil {
		status = *b.PaymentStatus
	}
	var price int64
	if b.TotalPriceCents != nil {
		price = *b.TotalPriceCents
	}
	return &queries.ReservationView{
		ID:              uuid.New(),
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		HotelID:         b.HotelID,
		HotelName:       b.HotelName,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		TotalPriceCents: price,
		PaymentStatus:   status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildRoomSnapshot() *commands.RoomSnapshot {
	return &commands.RoomSnapshot{
		ID:               b.RoomID,
		HotelID:          b.HotelID,
		Number:           b.RoomNumber,
		NightlyRateCents: 12000,
		Capacity:         2,
		RoomType:         "Double",
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithRoomID(roomID uuid.UUID) *ReservationBuilder {
	b.RoomID = roomID
	return b
}

func (b *ReservationBuilder) WithStay(start, end time.Time) *ReservationBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *ReservationBuilder) WithCustomerName(name string) *ReservationBuilder {
	b.CustomerName = name
	return b
}

func (b *ReservationBuilder) WithPrice(cents int64) *ReservationBuilder {
	b.TotalPriceCents = &cents
	return b
}

func (b *ReservationBuilder) WithPaymentStatus(status string) *ReservationBuilder {
	b.PaymentStatus = &status
	return b
}

func (b *ReservationBuilder) AsCanceled() *ReservationBuilder {
	return b.WithPaymentStatus("Canceled")
}
