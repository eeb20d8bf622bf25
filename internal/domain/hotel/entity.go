package hotel

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyHotelName = errors.New("hotel name is required")

type Hotel struct {
	id        uuid.UUID
	name      string
	chain     string
	city      string
	phone     string
	email     string
	amenities string
	createdAt time.Time
	updatedAt time.Time
}

func NewHotel(name, chain, city, phone, email, amenities string) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyHotelName
	}

	return &Hotel{
		id:        uuid.New(),
		name:      name,
		chain:     chain,
		city:      city,
		phone:     phone,
		email:     email,
		amenities: amenities,
	}, nil
}

func ReconstructHotel(
	id uuid.UUID,
	name, chain, city, phone, email, amenities string,
	createdAt, updatedAt time.Time,
) *Hotel {
	return &Hotel{
		id:        id,
		name:      name,
		chain:     chain,
		city:      city,
		phone:     phone,
		email:     email,
		amenities: amenities,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) Chain() string        { return h.chain }
func (h *Hotel) City() string         { return h.city }
func (h *Hotel) Phone() string        { return h.phone }
func (h *Hotel) Email() string        { return h.email }
func (h *Hotel) Amenities() string    { return h.amenities }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }
