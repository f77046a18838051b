package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - Create a booking confirmed on the spot
		r.Post("/", bookingHandler.CreateBooking)

		// POST /api/bookings/hold - Place a short-lived hold on a slot
		r.Post("/hold", bookingHandler.HoldBooking)

		// GET /api/bookings?roomId=&date= - List bookings for a room and day
		r.Get("/", bookingHandler.ListBookings)

		// GET /api/bookings/{id} - View booking details
		r.Get("/{id}", bookingHandler.GetBooking)

		// POST /api/bookings/{id}/confirm - Confirm a held booking
		r.Post("/{id}/confirm", bookingHandler.ConfirmBooking)

		// PATCH /api/bookings/{id}/cancel - Cancel a booking (idempotent)
		r.Patch("/{id}/cancel", bookingHandler.CancelBooking)

		// PATCH /api/bookings/{id}/reschedule - Move a confirmed booking
		r.Patch("/{id}/reschedule", bookingHandler.RescheduleBooking)
	})
}
