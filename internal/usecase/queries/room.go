package queries

import (
	"context"
	"time"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID, price RoomPriceFilter) ([]*RoomView, error)
	// ListAvailable reports the hotel's rooms with no non-canceled
	// reservation overlapping [start, end], under the same inclusive-bound
	// policy the booking path uses.
	ListAvailable(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]*RoomView, error)
	ListRoomTypes(ctx context.Context) ([]string, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID, price RoomPriceFilter) ([]*RoomView, error)
	FindAvailableByHotelID(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]*RoomView, error)
	FindRoomTypes(ctx context.Context) ([]string, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *roomQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID, price RoomPriceFilter) ([]*RoomView, error) {
	views, err := q.store.FindByHotelID(ctx, hotelID, price)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]*RoomView, error) {
	if !start.Before(end) {
		return nil, errs.New("start date must be before end date")
	}
	views, err := q.store.FindAvailableByHotelID(ctx, hotelID, start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context) ([]string, error) {
	types, err := q.store.FindRoomTypes(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return types, nil
}
