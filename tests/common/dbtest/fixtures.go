//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestHotel(t *testing.T, pool *pgxpool.Pool, name, city string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO hotels (id, name, city) VALUES ($1, $2, $3)`,
		id, name, city,
	)
	require.NoError(t, err, "failed to seed hotel")
	return id
}

func CreateTestRoom(t *testing.T, pool *pgxpool.Pool, hotelID uuid.UUID, number string, nightlyRateCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO rooms (id, hotel_id, number, nightly_rate_cents, capacity, room_type)
		 VALUES ($1, $2, $3, $4, 2, 'Double')`,
		id, hotelID, number, nightlyRateCents,
	)
	require.NoError(t, err, "failed to seed room")
	return id
}

func CreateTestReservation(t *testing.T, pool *pgxpool.Pool, roomID uuid.UUID, start, end time.Time, customerName, paymentStatus string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO reservations (id, room_id, start_date, end_date, customer_name, total_price_cents, payment_status)
		 VALUES ($1, $2, $3, $4, $5, 24000, $6)`,
		id, roomID, start, end, customerName, paymentStatus,
	)
	require.NoError(t, err, "failed to seed reservation")
	return id
}
