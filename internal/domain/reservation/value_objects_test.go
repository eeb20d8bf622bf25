//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

func TestStayRange(t *testing.T) {
	t.Run("start must precede end", func(t *testing.T) {
		_, err := reservation.NewStayRange(date(2026, 6, 12, 0, 0), date(2026, 6, 10, 0, 0))
		require.ErrorIs(t, err, reservation.ErrInvalidStayRange)

		_, err = reservation.NewStayRange(date(2026, 6, 10, 0, 0), date(2026, 6, 10, 0, 0))
		require.ErrorIs(t, err, reservation.ErrInvalidStayRange)

		_, err = reservation.NewStayRange(date(2026, 6, 10, 0, 0), date(2026, 6, 11, 0, 0))
		require.NoError(t, err)
	})

	t.Run("overlap is inclusive at both bounds", func(t *testing.T) {
		base, err := reservation.NewStayRange(date(2026, 6, 10, 12, 0), date(2026, 6, 12, 12, 0))
		require.NoError(t, err)

		cases := []struct {
			name     string
			start    time.Time
			end      time.Time
			overlaps bool
		}{
			{"fully before", date(2026, 6, 7, 0, 0), date(2026, 6, 9, 0, 0), false},
			{"fully after", date(2026, 6, 13, 0, 0), date(2026, 6, 15, 0, 0), false},
			{"contained", date(2026, 6, 11, 0, 0), date(2026, 6, 12, 0, 0), true},
			{"containing", date(2026, 6, 9, 0, 0), date(2026, 6, 13, 0, 0), true},
			{"left edge overlap", date(2026, 6, 9, 0, 0), date(2026, 6, 10, 18, 0), true},
			{"right edge overlap", date(2026, 6, 12, 6, 0), date(2026, 6, 14, 0, 0), true},
			{"shared boundary at start", date(2026, 6, 8, 0, 0), date(2026, 6, 10, 12, 0), true},
			{"shared boundary at end", date(2026, 6, 12, 12, 0), date(2026, 6, 14, 0, 0), true},
			{"one minute before start", date(2026, 6, 8, 0, 0), date(2026, 6, 10, 11, 59), false},
			{"one minute after end", date(2026, 6, 12, 12, 1), date(2026, 6, 14, 0, 0), false},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				other, err := reservation.NewStayRange(c.start, c.end)
				require.NoError(t, err)
				assert.Equal(t, c.overlaps, base.Overlaps(other))
				assert.Equal(t, c.overlaps, other.Overlaps(base))
			})
		}
	})

	t.Run("nights ignores time of day", func(t *testing.T) {
		cases := []struct {
			name   string
			start  time.Time
			end    time.Time
			nights int64
		}{
			{"whole days", date(2026, 6, 10, 0, 0), date(2026, 6, 12, 0, 0), 2},
			{"late checkin early checkout", date(2026, 6, 10, 18, 0), date(2026, 6, 12, 9, 0), 2},
			{"early checkin late checkout", date(2026, 6, 10, 6, 0), date(2026, 6, 12, 23, 0), 2},
			{"same day stay", date(2026, 6, 10, 9, 0), date(2026, 6, 10, 18, 0), 0},
			{"single night", date(2026, 6, 10, 23, 0), date(2026, 6, 11, 1, 0), 1},
			{"across month boundary", date(2026, 6, 30, 15, 0), date(2026, 7, 2, 11, 0), 2},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				stay, err := reservation.NewStayRange(c.start, c.end)
				require.NoError(t, err)
				assert.Equal(t, c.nights, stay.Nights())
			})
		}
	})
}

func TestMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := reservation.NewMoney(-1)
		require.ErrorIs(t, err, reservation.ErrNegativePrice)
	})

	t.Run("zero is valid", func(t *testing.T) {
		m, err := reservation.NewMoney(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("keeps cents", func(t *testing.T) {
		m, err := reservation.NewMoney(24000)
		require.NoError(t, err)
		assert.Equal(t, int64(24000), m.Cents())
		assert.False(t, m.IsZero())
	})
}

func TestGuest(t *testing.T) {
	t.Run("trims name", func(t *testing.T) {
		g, err := reservation.NewGuest("  Alice Morgan  ", "alice@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, "Alice Morgan", g.Name())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := reservation.NewGuest("   ", "alice@example.com", "")
		require.ErrorIs(t, err, reservation.ErrEmptyGuestName)
	})
}
