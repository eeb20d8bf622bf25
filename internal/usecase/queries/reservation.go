package queries

import (
	"context"
	"time"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrRoomNotFound        = errs.New("room not found")
	ErrHotelNotFound       = errs.New("hotel not found")
	ErrQueryFailed         = errs.New("query failed")
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*ReservationView, error)
	ListByHotelOnDate(ctx context.Context, hotelID uuid.UUID, date time.Time) ([]*ReservationView, error)
	SearchByCustomer(ctx context.Context, customerName string) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*ReservationView, error)
	FindByHotelIDOnDate(ctx context.Context, hotelID uuid.UUID, date time.Time) ([]*ReservationView, error)
	FindByCustomerName(ctx context.Context, customerName string) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.store.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.store.FindByHotelID(ctx, hotelID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListByHotelOnDate(ctx context.Context, hotelID uuid.UUID, date time.Time) ([]*ReservationView, error) {
	views, err := q.store.FindByHotelIDOnDate(ctx, hotelID, date)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) SearchByCustomer(ctx context.Context, customerName string) ([]*ReservationView, error) {
	views, err := q.store.FindByCustomerName(ctx, customerName)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
