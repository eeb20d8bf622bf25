package request

import (
	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name      string `json:"name" binding:"required"`
	Chain     string `json:"chain,omitempty"`
	City      string `json:"city,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Amenities string `json:"amenities,omitempty"`
}

func (r CreateHotelRequest) ToParams() commands.CreateHotelParams {
	return commands.CreateHotelParams{
		Name:      r.Name,
		Chain:     r.Chain,
		City:      r.City,
		Phone:     r.Phone,
		Email:     r.Email,
		Amenities: r.Amenities,
	}
}

type UpdateHotelRequest struct {
	CreateHotelRequest
}

func (r UpdateHotelRequest) ToParams(id uuid.UUID) commands.UpdateHotelParams {
	return commands.UpdateHotelParams{
		ID:                id,
		CreateHotelParams: r.CreateHotelRequest.ToParams(),
	}
}
