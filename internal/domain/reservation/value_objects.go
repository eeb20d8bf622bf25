package reservation

import (
	"fmt"
	"strings"
	"time"
)

// StayRange is a closed date range [start, end]. Two ranges that share a
// boundary instant overlap: a checkout and a check-in at the identical
// instant compete for the room.
type StayRange struct {
	start time.Time
	end   time.Time
}

func NewStayRange(start, end time.Time) (StayRange, error) {
	if !start.Before(end) {
		return StayRange{}, ErrInvalidStayRange
	}

	return StayRange{
		start: start,
		end:   end,
	}, nil
}

func (s StayRange) Start() time.Time {
	return s.start
}

func (s StayRange) End() time.Time {
	return s.end
}

func (s StayRange) Overlaps(other StayRange) bool {
	return !(s.end.Before(other.start) || s.start.After(other.end))
}

func (s StayRange) Equal(other StayRange) bool {
	return s.start.Equal(other.start) && s.end.Equal(other.end)
}

// Nights counts whole calendar days between the start and end dates.
// Time-of-day components are discarded, so 10th 18:00 to 12th 09:00 is
// still two nights.
func (s StayRange) Nights() int64 {
	a := startOfDay(s.start)
	b := startOfDay(s.end)
	return int64(b.Sub(a).Hours() / 24)
}

func (s StayRange) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s]", s.start.Format(time.RFC3339), s.end.Format(time.RFC3339))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func MoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// Guest holds the customer contact fields. Only the name is mandatory;
// email and phone are free text and not validated for format.
type Guest struct {
	name  string
	email string
	phone string
}

func NewGuest(name, email, phone string) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, ErrEmptyGuestName
	}
	return Guest{name: name, email: email, phone: phone}, nil
}

func (g Guest) Name() string {
	return g.name
}

func (g Guest) Email() string {
	return g.email
}

func (g Guest) Phone() string {
	return g.phone
}
