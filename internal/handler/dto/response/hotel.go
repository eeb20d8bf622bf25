package response

import (
	"log/slog"
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HotelResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Chain     string    `json:"chain,omitempty"`
	City      string    `json:"city,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Amenities string    `json:"amenities,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromHotelView(view *queries.HotelView) *HotelResponse {
	var resp HotelResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map hotel view", "error", err)
	}
	return &resp
}

func FromHotelViews(views []*queries.HotelView) []*HotelResponse {
	result := make([]*HotelResponse, len(views))
	for i, view := range views {
		result[i] = FromHotelView(view)
	}
	return result
}
