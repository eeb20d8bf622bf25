package commands

import (
	"context"
	"time"

	"hotelier/internal/domain/hotel"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrHotelHasRooms = errs.New("hotel has existing rooms")

type CreateHotelParams struct {
	Name      string
	Chain     string
	City      string
	Phone     string
	Email     string
	Amenities string
}

type UpdateHotelParams struct {
	ID uuid.UUID
	CreateHotelParams
}

type HotelCommands interface {
	CreateHotel(ctx context.Context, p CreateHotelParams) (uuid.UUID, error)
	UpdateHotel(ctx context.Context, p UpdateHotelParams) error
	DeleteHotel(ctx context.Context, id uuid.UUID) error
}

type hotelCommandsImpl struct {
	hotelRepo    HotelRepository
	clock        clock.Clock
	queryTimeout time.Duration
}

func NewHotelCommands(hotelRepo HotelRepository, clk clock.Clock, queryTimeout time.Duration) HotelCommands {
	return &hotelCommandsImpl{
		hotelRepo:    hotelRepo,
		clock:        clk,
		queryTimeout: queryTimeout,
	}
}

func (c *hotelCommandsImpl) CreateHotel(ctx context.Context, p CreateHotelParams) (uuid.UUID, error) {
	entity, err := hotel.NewHotel(p.Name, p.Chain, p.City, p.Phone, p.Email, p.Amenities)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	id, err := c.hotelRepo.Create(opCtx, entity)
	if err != nil {
		return uuid.Nil, mapManagementError(err)
	}

	return id, nil
}

func (c *hotelCommandsImpl) UpdateHotel(ctx context.Context, p UpdateHotelParams) error {
	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	current, err := c.hotelRepo.FindByID(opCtx, p.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHotelNotFound
		}
		return mapManagementError(err)
	}

	entity, err := hotel.NewHotel(p.Name, p.Chain, p.City, p.Phone, p.Email, p.Amenities)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	updated := hotel.ReconstructHotel(
		current.ID, entity.Name(), entity.Chain(), entity.City(),
		entity.Phone(), entity.Email(), entity.Amenities(),
		current.CreatedAt, c.clock.Now(),
	)

	if err := c.hotelRepo.Update(opCtx, updated); err != nil {
		return mapManagementError(err)
	}

	return nil
}

func (c *hotelCommandsImpl) DeleteHotel(ctx context.Context, id uuid.UUID) error {
	opCtx, cancel := c.opContext(ctx)
	defer cancel()

	if err := c.hotelRepo.Delete(opCtx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHotelNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrHotelHasRooms
		}
		return mapManagementError(err)
	}

	return nil
}

func (c *hotelCommandsImpl) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.queryTimeout)
}
