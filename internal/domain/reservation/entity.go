package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayRange     = errors.New("invalid stay range")
	ErrEmptyGuestName       = errors.New("guest name is required")
	ErrNegativePrice        = errors.New("price cannot be negative")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

type Reservation struct {
	id            uuid.UUID
	roomID        uuid.UUID
	stay          StayRange
	guest         Guest
	price         Money
	paymentStatus PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReservation(
	roomID uuid.UUID,
	stay StayRange,
	guest Guest,
	price Money,
	paymentStatus PaymentStatus,
) (*Reservation, error) {
	if paymentStatus == "" {
		paymentStatus = PaymentPending
	}
	if !paymentStatus.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}

	return &Reservation{
		id:            uuid.New(),
		roomID:        roomID,
		stay:          stay,
		guest:         guest,
		price:         price,
		paymentStatus: paymentStatus,
	}, nil
}

func ReconstructReservation(
	id, roomID uuid.UUID,
	stay StayRange,
	guest Guest,
	price Money,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		roomID:        roomID,
		stay:          stay,
		guest:         guest,
		price:         price,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) IsCanceled() bool {
	return r.paymentStatus == PaymentCanceled
}

// BlocksAvailability reports whether this reservation counts toward the
// room's overlap set.
func (r *Reservation) BlocksAvailability() bool {
	return !r.IsCanceled()
}

func (r *Reservation) SetPaymentStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return ErrInvalidPaymentStatus
	}
	r.paymentStatus = status
	return nil
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) RoomID() uuid.UUID            { return r.roomID }
func (r *Reservation) Stay() StayRange              { return r.stay }
func (r *Reservation) Guest() Guest                 { return r.guest }
func (r *Reservation) Price() Money                 { return r.price }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }
