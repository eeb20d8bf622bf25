package queries

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

type HotelQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	List(ctx context.Context) ([]*HotelView, error)
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	FindAll(ctx context.Context) ([]*HotelView, error)
}

type hotelQueriesImpl struct {
	store HotelReadStore
}

func NewHotelQueries(store HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{store: store}
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *hotelQueriesImpl) List(ctx context.Context) ([]*HotelView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
