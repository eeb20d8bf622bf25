package repository

import (
	"context"

	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.RoomSnapshot, error) {
	const q = `
		SELECT id, hotel_id, number, nightly_rate_cents, capacity, room_type, amenities, created_at, updated_at
		FROM rooms WHERE id = $1`

	var snap commands.RoomSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.HotelID, &snap.Number, &snap.NightlyRateCents,
		&snap.Capacity, &snap.RoomType, &snap.Amenities,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgErr("failed to find room by ID", err)
	}

	return &snap, nil
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) (uuid.UUID, error) {
	const q = `
		INSERT INTO rooms (id, hotel_id, number, nightly_rate_cents, capacity, room_type, amenities)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		rm.ID(), rm.HotelID(), rm.Number(), rm.NightlyRateCents(),
		rm.Capacity(), rm.RoomType(), rm.Amenities(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create room", err)
	}

	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	const q = `
		UPDATE rooms
		SET hotel_id = $2, number = $3, nightly_rate_cents = $4,
		    capacity = $5, room_type = $6, amenities = $7, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		rm.ID(), rm.HotelID(), rm.Number(), rm.NightlyRateCents(),
		rm.Capacity(), rm.RoomType(), rm.Amenities(),
	)
	if err != nil {
		return wrapPgErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}
