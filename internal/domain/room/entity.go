package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber = errors.New("room number is required")
	ErrNegativeRate    = errors.New("nightly rate cannot be negative")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

type Room struct {
	id               uuid.UUID
	hotelID          uuid.UUID
	number           string
	nightlyRateCents int64
	capacity         int32
	roomType         string
	amenities        string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRoom(hotelID uuid.UUID, number string, nightlyRateCents int64, capacity int32, roomType, amenities string) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if nightlyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:               uuid.New(),
		hotelID:          hotelID,
		number:           number,
		nightlyRateCents: nightlyRateCents,
		capacity:         capacity,
		roomType:         roomType,
		amenities:        amenities,
	}, nil
}

func ReconstructRoom(
	id, hotelID uuid.UUID,
	number string,
	nightlyRateCents int64,
	capacity int32,
	roomType, amenities string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:               id,
		hotelID:          hotelID,
		number:           number,
		nightlyRateCents: nightlyRateCents,
		capacity:         capacity,
		roomType:         roomType,
		amenities:        amenities,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (r *Room) ID() uuid.UUID           { return r.id }
func (r *Room) HotelID() uuid.UUID      { return r.hotelID }
func (r *Room) Number() string          { return r.number }
func (r *Room) NightlyRateCents() int64 { return r.nightlyRateCents }
func (r *Room) Capacity() int32         { return r.capacity }
func (r *Room) RoomType() string        { return r.roomType }
func (r *Room) Amenities() string       { return r.amenities }
func (r *Room) CreatedAt() time.Time    { return r.createdAt }
func (r *Room) UpdatedAt() time.Time    { return r.updatedAt }
