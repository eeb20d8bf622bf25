package readstore

import (
	"context"
	"time"

	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const roomViewSelect = `
	SELECT id, hotel_id, number, nightly_rate_cents, capacity, room_type, amenities, created_at, updated_at
	FROM rooms`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	q := roomViewSelect + ` WHERE id = $1`

	view, err := scanRoomView(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, wrapReadErr("failed to find room by ID", err)
	}

	return view, nil
}

func (r *RoomReadStore) FindByHotelID(ctx context.Context, hotelID uuid.UUID, price queries.RoomPriceFilter) ([]*queries.RoomView, error) {
	q := roomViewSelect + `
	WHERE hotel_id = $1
	  AND ($2::bigint IS NULL OR nightly_rate_cents >= $2)
	  AND ($3::bigint IS NULL OR nightly_rate_cents <= $3)
	ORDER BY number`

	rows, err := r.db.Query(ctx, q, hotelID, price.MinCents, price.MaxCents)
	if err != nil {
		return nil, wrapReadErr("failed to find rooms by hotel ID", err)
	}
	return collectRoomViews(rows)
}

// FindAvailableByHotelID lists rooms with no blocking reservation overlapping
// [start, end]. The overlap test keeps the booking path's inclusive-bound
// policy: a stay that merely touches the candidate range still blocks.
func (r *RoomReadStore) FindAvailableByHotelID(ctx context.Context, hotelID uuid.UUID, start, end time.Time) ([]*queries.RoomView, error) {
	q := roomViewSelect + `
	WHERE hotel_id = $1
	  AND NOT EXISTS (
		SELECT 1 FROM reservations res
		WHERE res.room_id = rooms.id
		  AND res.payment_status <> 'Canceled'
		  AND NOT (res.end_date < $2 OR res.start_date > $3)
	  )
	ORDER BY number`

	rows, err := r.db.Query(ctx, q, hotelID, start, end)
	if err != nil {
		return nil, wrapReadErr("failed to find available rooms", err)
	}
	return collectRoomViews(rows)
}

func (r *RoomReadStore) FindRoomTypes(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT room_type FROM rooms WHERE room_type <> '' ORDER BY room_type`)
	if err != nil {
		return nil, wrapReadErr("failed to find room types", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var roomType string
		if err := rows.Scan(&roomType); err != nil {
			return nil, wrapReadErr("failed to scan room type", err)
		}
		result = append(result, roomType)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate room types", err)
	}

	return result, nil
}

func collectRoomViews(rows pgx.Rows) ([]*queries.RoomView, error) {
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, wrapReadErr("failed to scan room view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate room views", err)
	}

	return result, nil
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var v queries.RoomView
	err := row.Scan(
		&v.ID, &v.HotelID, &v.Number, &v.NightlyRateCents,
		&v.Capacity, &v.RoomType, &v.Amenities,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
