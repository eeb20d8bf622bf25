package request

import (
	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID          uuid.UUID `json:"hotel_id" binding:"required"`
	Number           string    `json:"number" binding:"required"`
	NightlyRateCents int64     `json:"nightly_rate_cents" binding:"min=0"`
	Capacity         int32     `json:"capacity" binding:"required,min=1"`
	RoomType         string    `json:"room_type,omitempty"`
	Amenities        string    `json:"amenities,omitempty"`
}

func (r CreateRoomRequest) ToParams() commands.CreateRoomParams {
	return commands.CreateRoomParams{
		HotelID:          r.HotelID,
		Number:           r.Number,
		NightlyRateCents: r.NightlyRateCents,
		Capacity:         r.Capacity,
		RoomType:         r.RoomType,
		Amenities:        r.Amenities,
	}
}

type UpdateRoomRequest struct {
	CreateRoomRequest
}

func (r UpdateRoomRequest) ToParams(id uuid.UUID) commands.UpdateRoomParams {
	return commands.UpdateRoomParams{
		ID:               id,
		CreateRoomParams: r.CreateRoomRequest.ToParams(),
	}
}
