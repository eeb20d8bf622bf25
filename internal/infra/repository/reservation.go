package repository

import (
	"context"
	"time"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	const q = `
		INSERT INTO reservations (
			id, room_id, start_date, end_date,
			customer_name, customer_email, customer_phone,
			total_price_cents, payment_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		res.ID(), res.RoomID(), res.Stay().Start(), res.Stay().End(),
		res.Guest().Name(), res.Guest().Email(), res.Guest().Phone(),
		res.Price().Cents(), res.PaymentStatus().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	const q = `
		UPDATE reservations
		SET room_id = $2, start_date = $3, end_date = $4,
		    customer_name = $5, customer_email = $6, customer_phone = $7,
		    total_price_cents = $8, payment_status = $9, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		res.ID(), res.RoomID(), res.Stay().Start(), res.Stay().End(),
		res.Guest().Name(), res.Guest().Email(), res.Guest().Phone(),
		res.Price().Cents(), res.PaymentStatus().String(),
	)
	if err != nil {
		return wrapPgErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status reservation.PaymentStatus) error {
	const q = `UPDATE reservations SET payment_status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, status.String())
	if err != nil {
		return wrapPgErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

const reservationColumns = `
	id, room_id, start_date, end_date,
	customer_name, customer_email, customer_phone,
	total_price_cents, payment_status, created_at, updated_at`

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	q := `SELECT` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, wrapPgErr("failed to find reservation by ID", err)
	}

	return res, nil
}

func (r *ReservationRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	q := `SELECT` + reservationColumns + ` FROM reservations WHERE room_id = $1 ORDER BY start_date`

	rows, err := r.db.Query(ctx, q, roomID)
	if err != nil {
		return nil, wrapPgErr("failed to find reservations by room ID", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		res, scanErr := scanReservation(rows)
		if scanErr != nil {
			return nil, wrapPgErr("failed to scan reservation row", scanErr)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id, roomID           uuid.UUID
		start, end           time.Time
		name, email, phone   string
		priceCents           int64
		status               string
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&id, &roomID, &start, &end, &name, &email, &phone, &priceCents, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	stay, err := reservation.NewStayRange(start, end)
	if err != nil {
		return nil, err
	}
	guest, err := reservation.NewGuest(name, email, phone)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id, roomID, stay, guest,
		reservation.MoneyFromCents(priceCents),
		reservation.PaymentStatus(status),
		createdAt, updatedAt,
	), nil
}
