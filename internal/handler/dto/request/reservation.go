package request

import (
	"time"

	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID          uuid.UUID `json:"room_id" binding:"required"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerEmail   string    `json:"customer_email,omitempty"`
	CustomerPhone   string    `json:"customer_phone,omitempty"`
	TotalPriceCents *int64    `json:"total_price_cents,omitempty"`
	PaymentStatus   *string   `json:"payment_status,omitempty"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		RoomID:          r.RoomID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		TotalPriceCents: r.TotalPriceCents,
		PaymentStatus:   r.PaymentStatus,
	}
}

type UpdateReservationRequest struct {
	CreateReservationRequest
}

func (r UpdateReservationRequest) ToParams(id uuid.UUID) commands.UpdateReservationParams {
	return commands.UpdateReservationParams{
		ID:                      id,
		CreateReservationParams: r.CreateReservationRequest.ToParams(),
	}
}

type SetPaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}
