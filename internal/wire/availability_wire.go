package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAvailability(
	r chi.Router,
	availabilityHandler *adaptor.AvailabilityHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// GET /api/availability?roomId=&date= - Slot grid for a room and day
	r.Get("/api/availability", availabilityHandler.GetAvailability)
}
