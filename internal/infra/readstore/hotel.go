package readstore

import (
	"context"

	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(dbtx db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: dbtx}
}

const hotelViewSelect = `
	SELECT id, name, chain, city, phone, email, amenities, created_at, updated_at
	FROM hotels`

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	q := hotelViewSelect + ` WHERE id = $1`

	view, err := scanHotelView(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, wrapReadErr("failed to find hotel by ID", err)
	}

	return view, nil
}

func (r *HotelReadStore) FindAll(ctx context.Context) ([]*queries.HotelView, error) {
	rows, err := r.db.Query(ctx, hotelViewSelect+` ORDER BY name`)
	if err != nil {
		return nil, wrapReadErr("failed to find hotels", err)
	}
	defer rows.Close()

	var result []*queries.HotelView
	for rows.Next() {
		view, scanErr := scanHotelView(rows)
		if scanErr != nil {
			return nil, wrapReadErr("failed to scan hotel view", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate hotel views", err)
	}

	return result, nil
}

func scanHotelView(row pgx.Row) (*queries.HotelView, error) {
	var v queries.HotelView
	err := row.Scan(
		&v.ID, &v.Name, &v.Chain, &v.City,
		&v.Phone, &v.Email, &v.Amenities,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
