package reservation

import "github.com/google/uuid"

// FindConflict returns the first non-canceled reservation whose stay overlaps
// the candidate range, skipping the reservation identified by excludeID so an
// update never conflicts with itself. Returns nil when the range is clear.
//
// Pure over the supplied slice; callers fetch the room's reservations first.
func FindConflict(existing []*Reservation, candidate StayRange, excludeID uuid.UUID) *Reservation {
	for _, res := range existing {
		if res.ID() == excludeID {
			continue
		}
		if !res.BlocksAvailability() {
			continue
		}
		if candidate.Overlaps(res.Stay()) {
			return res
		}
	}
	return nil
}

// IsAvailable reports whether the candidate range clears every existing
// reservation for the room.
func IsAvailable(existing []*Reservation, candidate StayRange) bool {
	return FindConflict(existing, candidate, uuid.Nil) == nil
}

// IsAvailableExcluding is IsAvailable with the reservation being edited
// removed from the conflict set.
func IsAvailableExcluding(existing []*Reservation, candidate StayRange, excludeID uuid.UUID) bool {
	return FindConflict(existing, candidate, excludeID) == nil
}
