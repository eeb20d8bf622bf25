// Package roomlock serializes booking operations per room. The availability
// check and the subsequent insert are not atomic at the application level, so
// callers hold the room's lock across the whole check-and-persist sequence.
// The database exclusion constraint remains the authoritative guard against
// writers outside this process.
package roomlock

import (
	"sync"

	"github.com/google/uuid"
)

type Keyed struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyed() *Keyed {
	return &Keyed{locks: make(map[uuid.UUID]*entry)}
}

// Lock blocks until the lock for roomID is held and returns the unlock func.
func (k *Keyed) Lock(roomID uuid.UUID) func() {
	k.mu.Lock()
	e, ok := k.locks[roomID]
	if !ok {
		e = &entry{}
		k.locks[roomID] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, roomID)
		}
		k.mu.Unlock()
	}
}
