package readstore

import (
	"context"
	"time"

	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReservationReadStore assembles reservation views with their room and hotel
// context joined in, so the reservation row itself stays normalized.
type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewSelect = `
	SELECT
		res.id, res.room_id, rm.number, rm.hotel_id, h.name,
		res.start_date, res.end_date,
		res.customer_name, res.customer_email, res.customer_phone,
		res.total_price_cents, res.payment_status,
		res.created_at, res.updated_at
	FROM reservations res
	JOIN rooms rm ON rm.id = res.room_id
	JOIN hotels h ON h.id = rm.hotel_id`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	q := reservationViewSelect + ` WHERE res.id = $1`

	view, err := scanReservationView(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, wrapReadErr("failed to find reservation by ID", err)
	}

	return view, nil
}

func (r *ReservationReadStore) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*queries.ReservationView, error) {
	q := reservationViewSelect + ` WHERE res.room_id = $1 ORDER BY res.start_date`

	rows, err := r.db.Query(ctx, q, roomID)
	if err != nil {
		return nil, wrapReadErr("failed to find reservations by room ID", err)
	}
	return collectReservationViews(rows)
}

func (r *ReservationReadStore) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*queries.ReservationView, error) {
	q := reservationViewSelect + ` WHERE rm.hotel_id = $1 ORDER BY res.start_date`

	rows, err := r.db.Query(ctx, q, hotelID)
	if err != nil {
		return nil, wrapReadErr("failed to find reservations by hotel ID", err)
	}
	return collectReservationViews(rows)
}

// FindByHotelIDOnDate returns the hotel's reservations whose stay covers the
// given calendar date.
func (r *ReservationReadStore) FindByHotelIDOnDate(ctx context.Context, hotelID uuid.UUID, date time.Time) ([]*queries.ReservationView, error) {
	q := reservationViewSelect + `
	WHERE rm.hotel_id = $1
	  AND res.start_date::date <= $2::date
	  AND res.end_date::date >= $2::date
	ORDER BY res.start_date`

	rows, err := r.db.Query(ctx, q, hotelID, date)
	if err != nil {
		return nil, wrapReadErr("failed to find reservations by hotel ID and date", err)
	}
	return collectReservationViews(rows)
}

func (r *ReservationReadStore) FindByCustomerName(ctx context.Context, customerName string) ([]*queries.ReservationView, error) {
	q := reservationViewSelect + ` WHERE res.customer_name ILIKE '%' || $1 || '%' ORDER BY res.start_date`

	rows, err := r.db.Query(ctx, q, customerName)
	if err != nil {
		return nil, wrapReadErr("failed to find reservations by customer name", err)
	}
	return collectReservationViews(rows)
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, wrapReadErr("failed to scan reservation view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate reservation views", err)
	}

	return result, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID, &v.RoomID, &v.RoomNumber, &v.HotelID, &v.HotelName,
		&v.StartDate, &v.EndDate,
		&v.CustomerName, &v.CustomerEmail, &v.CustomerPhone,
		&v.TotalPriceCents, &v.PaymentStatus,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
