package response

import (
	"time"

	"room-booking/internal/data/entity"
	"room-booking/pkg/utils"
)

type BookingResponse struct {
	ID            string     `json:"id"`
	RoomID        string     `json:"roomId"`
	Status        string     `json:"status"`
	Date          string     `json:"date"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	PriceCents    int        `json:"priceCents"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	CustomerName  string     `json:"customerName,omitempty"`
	CustomerEmail string     `json:"customerEmail,omitempty"`
	CustomerPhone string     `json:"customerPhone,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func BookingToResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            booking.ID.String(),
		RoomID:        booking.RoomID.String(),
		Status:        string(booking.Status),
		Date:          utils.FormatDate(booking.BookingDate),
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
		PriceCents:    booking.TotalPriceCents,
		ExpiresAt:     booking.ExpiresAt,
		CustomerName:  utils.StringOrEmpty(booking.CustomerName),
		CustomerEmail: utils.StringOrEmpty(booking.CustomerEmail),
		CustomerPhone: utils.StringOrEmpty(booking.CustomerPhone),
		CreatedAt:     booking.CreatedAt,
	}
}
