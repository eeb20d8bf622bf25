//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotelier/internal/domain/hotel"
	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManagedRoomRepo struct {
	snapshots map[uuid.UUID]*commands.RoomSnapshot
	updated   *room.Room
}

func newFakeManagedRoomRepo(snaps ...*commands.RoomSnapshot) *fakeManagedRoomRepo {
	f := &fakeManagedRoomRepo{snapshots: make(map[uuid.UUID]*commands.RoomSnapshot)}
	for _, s := range snaps {
		f.snapshots[s.ID] = s
	}
	return f
}

func (f *fakeManagedRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*commands.RoomSnapshot, error) {
	snap, ok := f.snapshots[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (f *fakeManagedRoomRepo) Create(_ context.Context, rm *room.Room) (uuid.UUID, error) {
	return rm.ID(), nil
}

func (f *fakeManagedRoomRepo) Update(_ context.Context, rm *room.Room) error {
	f.updated = rm
	return nil
}

func (f *fakeManagedRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.snapshots[id]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	delete(f.snapshots, id)
	return nil
}

type fakeHotelRepo struct {
	snapshots map[uuid.UUID]*commands.HotelSnapshot
	updated   *hotel.Hotel
}

func newFakeHotelRepo(snaps ...*commands.HotelSnapshot) *fakeHotelRepo {
	f := &fakeHotelRepo{snapshots: make(map[uuid.UUID]*commands.HotelSnapshot)}
	for _, s := range snaps {
		f.snapshots[s.ID] = s
	}
	return f
}

func (f *fakeHotelRepo) FindByID(_ context.Context, id uuid.UUID) (*commands.HotelSnapshot, error) {
	snap, ok := f.snapshots[id]
	if !ok {
		return nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (f *fakeHotelRepo) Create(_ context.Context, h *hotel.Hotel) (uuid.UUID, error) {
	return h.ID(), nil
}

func (f *fakeHotelRepo) Update(_ context.Context, h *hotel.Hotel) error {
	f.updated = h
	return nil
}

func (f *fakeHotelRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.snapshots[id]; !ok {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	delete(f.snapshots, id)
	return nil
}

func TestUpdateRoom(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	hotelSnap := &commands.HotelSnapshot{ID: uuid.New(), Name: "Grand Plaza"}
	roomSnap := &commands.RoomSnapshot{
		ID:               uuid.New(),
		HotelID:          hotelSnap.ID,
		Number:           "101",
		NightlyRateCents: 12000,
		Capacity:         2,
		RoomType:         "Double",
		CreatedAt:        createdAt,
	}

	t.Run("stamps update time from the injected clock", func(t *testing.T) {
		roomRepo := newFakeManagedRoomRepo(roomSnap)
		hotelRepo := newFakeHotelRepo(hotelSnap)
		cmds := commands.NewRoomCommands(roomRepo, hotelRepo, clock.NewMockClock(now), time.Second)

		err := cmds.UpdateRoom(context.Background(), commands.UpdateRoomParams{
			ID: roomSnap.ID,
			CreateRoomParams: commands.CreateRoomParams{
				HotelID:          hotelSnap.ID,
				Number:           "101",
				NightlyRateCents: 15000,
				Capacity:         2,
				RoomType:         "Double",
			},
		})
		require.NoError(t, err)

		require.NotNil(t, roomRepo.updated)
		assert.Equal(t, int64(15000), roomRepo.updated.NightlyRateCents())
		assert.True(t, roomRepo.updated.UpdatedAt().Equal(now))
		assert.True(t, roomRepo.updated.CreatedAt().Equal(createdAt))
	})

	t.Run("unknown room", func(t *testing.T) {
		roomRepo := newFakeManagedRoomRepo()
		hotelRepo := newFakeHotelRepo(hotelSnap)
		cmds := commands.NewRoomCommands(roomRepo, hotelRepo, clock.NewMockClock(now), time.Second)

		err := cmds.UpdateRoom(context.Background(), commands.UpdateRoomParams{
			ID: uuid.New(),
			CreateRoomParams: commands.CreateRoomParams{
				HotelID:          hotelSnap.ID,
				Number:           "101",
				NightlyRateCents: 12000,
				Capacity:         2,
				RoomType:         "Double",
			},
		})
		require.ErrorIs(t, err, commands.ErrRoomNotFound)
	})
}

func TestUpdateHotel(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 11, 3, 8, 30, 0, 0, time.UTC)

	t.Run("keeps creation time and stamps the injected clock", func(t *testing.T) {
		snap := &commands.HotelSnapshot{
			ID:        uuid.New(),
			Name:      "Grand Plaza",
			Chain:     "Plaza Group",
			City:      "Lisbon",
			CreatedAt: createdAt,
		}
		hotelRepo := newFakeHotelRepo(snap)
		cmds := commands.NewHotelCommands(hotelRepo, clock.NewMockClock(now), time.Second)

		err := cmds.UpdateHotel(context.Background(), commands.UpdateHotelParams{
			ID: snap.ID,
			CreateHotelParams: commands.CreateHotelParams{
				Name:  "Grand Plaza Riverside",
				Chain: "Plaza Group",
				City:  "Lisbon",
			},
		})
		require.NoError(t, err)

		require.NotNil(t, hotelRepo.updated)
		assert.Equal(t, "Grand Plaza Riverside", hotelRepo.updated.Name())
		assert.True(t, hotelRepo.updated.CreatedAt().Equal(createdAt))
		assert.True(t, hotelRepo.updated.UpdatedAt().Equal(now))
	})

	t.Run("unknown hotel", func(t *testing.T) {
		hotelRepo := newFakeHotelRepo()
		cmds := commands.NewHotelCommands(hotelRepo, clock.NewMockClock(now), time.Second)

		err := cmds.UpdateHotel(context.Background(), commands.UpdateHotelParams{
			ID:                uuid.New(),
			CreateHotelParams: commands.CreateHotelParams{Name: "Anywhere Inn"},
		})
		require.ErrorIs(t, err, commands.ErrHotelNotFound)
	})
}
