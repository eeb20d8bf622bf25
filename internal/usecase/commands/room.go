package commands

import (
	"context"
	"time"

	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound   = errs.New("hotel not found")
	ErrRoomHasBookings = errs.New("room has existing reservations")
)

type CreateRoomParams struct {
	HotelID          uuid.UUID
	Number           string
	NightlyRateCents int64
	Capacity         int32
	RoomType         string
	Amenities        string
}

type UpdateRoomParams struct {
	ID uuid.UUID
	CreateRoomParams
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, p CreateRoomParams) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, p UpdateRoomParams) error
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	roomRepo     RoomRepository
	hotelRepo    HotelRepository
	clock        clock.Clock
	queryTimeout time.Duration
}

func NewRoomCommands(roomRepo RoomRepository, hotelRepo HotelRepository, clk clock.Clock, queryTimeout time.Duration) RoomCommands {
	return &roomCommandsImpl{
		roomRepo:     roomRepo,
		hotelRepo:    hotelRepo,
		clock:        clk,
		queryTimeout: queryTimeout,
	}
}

func (c *roomCommandsImpl) CreateRoom(ctx context.Context, p CreateRoomParams) (uuid.UUID, error) {
	if err := c.ensureHotelExists(ctx, p.HotelID); err != nil {
		return uuid.Nil, err
	}

	entity, err := room.NewRoom(p.HotelID, p.Number, p.NightlyRateCents, p.Capacity, p.RoomType, p.Amenities)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	id, err := c.roomRepo.Create(opCtx, entity)
	if err != nil {
		return uuid.Nil, mapManagementError(err)
	}

	return id, nil
}

func (c *roomCommandsImpl) UpdateRoom(ctx context.Context, p UpdateRoomParams) error {
	if err := c.ensureHotelExists(ctx, p.HotelID); err != nil {
		return err
	}

	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	current, err := c.roomRepo.FindByID(opCtx, p.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return mapManagementError(err)
	}

	entity, err := room.NewRoom(p.HotelID, p.Number, p.NightlyRateCents, p.Capacity, p.RoomType, p.Amenities)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	updated := room.ReconstructRoom(
		current.ID, entity.HotelID(), entity.Number(), entity.NightlyRateCents(),
		entity.Capacity(), entity.RoomType(), entity.Amenities(),
		current.CreatedAt, c.clock.Now(),
	)

	if err := c.roomRepo.Update(opCtx, updated); err != nil {
		return mapManagementError(err)
	}

	return nil
}

// DeleteRoom refuses rooms with reservations: the FK restrict rule surfaces
// as a conflict rather than cascading into booked stays.
func (c *roomCommandsImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	if err := c.roomRepo.Delete(opCtx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrRoomHasBookings
		}
		return mapManagementError(err)
	}

	return nil
}

func (c *roomCommandsImpl) ensureHotelExists(ctx context.Context, hotelID uuid.UUID) error {
	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	if _, err := c.hotelRepo.FindByID(opCtx, hotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHotelNotFound
		}
		return mapManagementError(err)
	}
	return nil
}

func (c *roomCommandsImpl) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.queryTimeout)
}

func mapManagementError(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrDomainValidation)
	case infra.IsKind(err, infra.KindTimeout):
		return errs.Mark(err, ErrStorageTimeout)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
