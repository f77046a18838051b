package adaptor

import (
	"net/http"

	"room-booking/internal/usecase"
	"room-booking/pkg/apperr"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetAvailability handles GET /api/availability?roomId=&date=
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("roomId")
	date := r.URL.Query().Get("date")
	if roomID == "" || date == "" {
		utils.ResponseError(w, r, apperr.BadRequest(apperr.CodeValidationFailed, "roomId and date are required"))
		return
	}

	availability, err := h.service.GetAvailability(r.Context(), roomID, date)
	if err != nil {
		h.log.Warn("Get availability failed",
			zap.Error(err),
			zap.String("room_id", roomID),
			zap.String("date", date),
		)
		utils.ResponseError(w, r, err)
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}
