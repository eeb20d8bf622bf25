package response

import (
	"log/slog"
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID               uuid.UUID `json:"id"`
	HotelID          uuid.UUID `json:"hotelId"`
	Number           string    `json:"number"`
	NightlyRateCents int64     `json:"nightlyRateCents"`
	Capacity         int32     `json:"capacity"`
	RoomType         string    `json:"roomType"`
	Amenities        string    `json:"amenities,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type RoomTypesResponse struct {
	RoomTypes []string `json:"roomTypes"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map room view", "error", err)
	}
	return &resp
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, len(views))
	for i, view := range views {
		result[i] = FromRoomView(view)
	}
	return result
}
