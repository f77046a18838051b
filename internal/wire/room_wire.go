package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// GET /api/rooms - List bookable rooms
	r.Get("/api/rooms", roomHandler.ListRooms)
}
