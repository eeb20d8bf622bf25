package commands

import (
	"context"
	"time"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/pkg/roomlock"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrRoomUnavailable         = errs.New("room unavailable for the requested dates")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrStorageTimeout          = errs.New("storage operation timed out")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationParams struct {
	RoomID          uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	TotalPriceCents *int64
	PaymentStatus   *string
}

type UpdateReservationParams struct {
	ID uuid.UUID
	CreateReservationParams
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, p CreateReservationParams) (uuid.UUID, error)
	UpdateReservation(ctx context.Context, p UpdateReservationParams) error
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteReservation(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	priceCalc       reservation.PriceCalculator
	locks           *roomlock.Keyed
	clock           clock.Clock
	queryTimeout    time.Duration
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	priceCalc reservation.PriceCalculator,
	locks *roomlock.Keyed,
	clk clock.Clock,
	queryTimeout time.Duration,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		priceCalc:       priceCalc,
		locks:           locks,
		clock:           clk,
		queryTimeout:    queryTimeout,
	}
}

func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, p CreateReservationParams) (uuid.UUID, error) {
	stay, guest, err := validateInput(p)
	if err != nil {
		return uuid.Nil, err
	}

	// Held across check-and-persist so no other caller in this process can
	// book the room between the availability read and the insert.
	unlock := c.locks.Lock(p.RoomID)
	defer unlock()

	rm, err := c.resolveRoom(ctx, p.RoomID)
	if err != nil {
		return uuid.Nil, err
	}

	existing, err := c.findRoomReservations(ctx, p.RoomID)
	if err != nil {
		return uuid.Nil, err
	}

	if conflict := reservation.FindConflict(existing, stay, uuid.Nil); conflict != nil {
		return uuid.Nil, ErrRoomUnavailable
	}

	price, err := c.resolvePrice(p.TotalPriceCents, rm, stay)
	if err != nil {
		return uuid.Nil, err
	}

	status := reservation.PaymentPending
	if p.PaymentStatus != nil && *p.PaymentStatus != "" {
		status = reservation.PaymentStatus(*p.PaymentStatus)
	}

	entity, err := reservation.NewReservation(p.RoomID, stay, guest, price, status)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	id, err := c.reservationRepo.Create(opCtx, entity)
	if err != nil {
		return uuid.Nil, c.mapWriteError(err)
	}

	return id, nil
}

func (c *reservationCommandsImpl) UpdateReservation(ctx context.Context, p UpdateReservationParams) error {
	stay, guest, err := validateInput(p.CreateReservationParams)
	if err != nil {
		return err
	}

	unlock := c.locks.Lock(p.RoomID)
	defer unlock()

	rm, err := c.resolveRoom(ctx, p.RoomID)
	if err != nil {
		return err
	}

	current, err := c.resolveReservation(ctx, p.ID)
	if err != nil {
		return err
	}

	rangeChanged := !current.Stay().Equal(stay)
	roomChanged := current.RoomID() != p.RoomID

	// Moving a reservation to another room competes with that room's
	// bookings even when the dates are unchanged.
	if rangeChanged || roomChanged {
		existing, findErr := c.findRoomReservations(ctx, p.RoomID)
		if findErr != nil {
			return findErr
		}
		if conflict := reservation.FindConflict(existing, stay, p.ID); conflict != nil {
			return ErrRoomUnavailable
		}
	}

	price := current.Price()
	if rangeChanged || roomChanged {
		price, err = c.resolvePrice(p.TotalPriceCents, rm, stay)
		if err != nil {
			return err
		}
	}

	status := current.PaymentStatus()
	if p.PaymentStatus != nil && *p.PaymentStatus != "" {
		status = reservation.PaymentStatus(*p.PaymentStatus)
	}
	if !status.IsValid() {
		return errs.Mark(reservation.ErrInvalidPaymentStatus, ErrDomainValidation)
	}

	updated := reservation.ReconstructReservation(
		p.ID, p.RoomID, stay, guest, price, status,
		current.CreatedAt(), c.clock.Now(),
	)

	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	if err := c.reservationRepo.Update(opCtx, updated); err != nil {
		return c.mapWriteError(err)
	}

	return nil
}

func (c *reservationCommandsImpl) SetPaymentStatus(ctx context.Context, id uuid.UUID, status string) error {
	next := reservation.PaymentStatus(status)
	if !next.IsValid() {
		return errs.Mark(reservation.ErrInvalidPaymentStatus, ErrDomainValidation)
	}

	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	if err := c.reservationRepo.UpdatePaymentStatus(opCtx, id, next); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return c.mapWriteError(err)
	}

	return nil
}

func (c *reservationCommandsImpl) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	if err := c.reservationRepo.Delete(opCtx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return c.mapWriteError(err)
	}

	return nil
}

func validateInput(p CreateReservationParams) (reservation.StayRange, reservation.Guest, error) {
	stay, err := reservation.NewStayRange(p.StartDate, p.EndDate)
	if err != nil {
		return reservation.StayRange{}, reservation.Guest{}, errs.Mark(err, ErrDomainValidation)
	}

	guest, err := reservation.NewGuest(p.CustomerName, p.CustomerEmail, p.CustomerPhone)
	if err != nil {
		return reservation.StayRange{}, reservation.Guest{}, errs.Mark(err, ErrDomainValidation)
	}

	return stay, guest, nil
}

func (c *reservationCommandsImpl) resolveRoom(ctx context.Context, roomID uuid.UUID) (*room.Room, error) {
	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	snap, err := c.roomRepo.FindByID(opCtx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, c.mapWriteError(err)
	}

	return room.ReconstructRoom(
		snap.ID, snap.HotelID, snap.Number, snap.NightlyRateCents,
		snap.Capacity, snap.RoomType, snap.Amenities,
		snap.CreatedAt, snap.UpdatedAt,
	), nil
}

func (c *reservationCommandsImpl) resolveReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	current, err := c.reservationRepo.FindByID(opCtx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, c.mapWriteError(err)
	}

	return current, nil
}

func (c *reservationCommandsImpl) findRoomReservations(ctx context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	existing, err := c.reservationRepo.FindByRoomID(opCtx, roomID)
	if err != nil {
		return nil, c.mapWriteError(err)
	}

	return existing, nil
}

// resolvePrice keeps an explicit positive price, otherwise derives
// rate × nights from the room.
func (c *reservationCommandsImpl) resolvePrice(explicit *int64, rm *room.Room, stay reservation.StayRange) (reservation.Money, error) {
	if explicit != nil && *explicit > 0 {
		return reservation.MoneyFromCents(*explicit), nil
	}

	price, err := reservation.NewMoney(c.priceCalc.CalculatePriceCents(rm, stay))
	if err != nil {
		return reservation.Money{}, errs.Mark(err, ErrDomainValidation)
	}
	return price, nil
}

func (c *reservationCommandsImpl) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.queryTimeout)
}

// mapWriteError translates infra error kinds into the usecase taxonomy. A
// conflict from the storage exclusion constraint means another writer won the
// room, which is the same business outcome as a failed availability check.
func (c *reservationCommandsImpl) mapWriteError(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return ErrRoomUnavailable
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrRoomNotFound
	case infra.IsKind(err, infra.KindTimeout):
		return errs.Mark(err, ErrStorageTimeout)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
