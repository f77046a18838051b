package adaptor

import (
	"room-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Payment      *PaymentHandler
	Room         *RoomHandler
	Checkout     *CheckoutHandler
}

func NewHandler(service *usecase.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Availability: NewAvailabilityHandler(service.Availability, logger),
		Booking:      NewBookingHandler(service.Booking, logger),
		Payment:      NewPaymentHandler(service.Payment, logger),
		Room:         NewRoomHandler(service.Room, logger),
		Checkout:     NewCheckoutHandler(logger),
	}
}
