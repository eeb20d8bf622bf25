package commands

import (
	"context"
	"time"

	"hotelier/internal/domain/hotel"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type RoomSnapshot struct {
	ID               uuid.UUID
	HotelID          uuid.UUID
	Number           string
	NightlyRateCents int64
	Capacity         int32
	RoomType         string
	Amenities        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type HotelSnapshot struct {
	ID        uuid.UUID
	Name      string
	Chain     string
	City      string
	Phone     string
	Email     string
	Amenities string
	CreatedAt time.Time
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status reservation.PaymentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	Create(ctx context.Context, rm *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, rm *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HotelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelSnapshot, error)
	Create(ctx context.Context, h *hotel.Hotel) (uuid.UUID, error)
	Update(ctx context.Context, h *hotel.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}
