package repository

import (
	"context"

	"hotelier/internal/domain/hotel"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
)

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(dbtx db.DBTX) *HotelRepository {
	return &HotelRepository{db: dbtx}
}

func (r *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.HotelSnapshot, error) {
	const q = `
		SELECT id, name, chain, city, phone, email, amenities, created_at
		FROM hotels WHERE id = $1`

	var snap commands.HotelSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.Name, &snap.Chain, &snap.City,
		&snap.Phone, &snap.Email, &snap.Amenities, &snap.CreatedAt,
	)
	if err != nil {
		return nil, wrapPgErr("failed to find hotel by ID", err)
	}

	return &snap, nil
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) (uuid.UUID, error) {
	const q = `
		INSERT INTO hotels (id, name, chain, city, phone, email, amenities)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		h.ID(), h.Name(), h.Chain(), h.City(), h.Phone(), h.Email(), h.Amenities(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create hotel", err)
	}

	return id, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	const q = `
		UPDATE hotels
		SET name = $2, chain = $3, city = $4, phone = $5, email = $6, amenities = $7, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		h.ID(), h.Name(), h.Chain(), h.City(), h.Phone(), h.Email(), h.Amenities(),
	)
	if err != nil {
		return wrapPgErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}

	return nil
}
