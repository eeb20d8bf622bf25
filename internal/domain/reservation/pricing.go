package reservation

import (
	"hotelier/internal/domain/room"
)

type PriceCalculator interface {
	CalculatePriceCents(rm *room.Room, stay StayRange) int64
}

// NightlyRateCalculator prices a stay as the room's nightly rate times the
// whole-calendar-day night count.
type NightlyRateCalculator struct{}

func NewNightlyRateCalculator() *NightlyRateCalculator {
	return &NightlyRateCalculator{}
}

func (c *NightlyRateCalculator) CalculatePriceCents(rm *room.Room, stay StayRange) int64 {
	return rm.NightlyRateCents() * stay.Nights()
}
