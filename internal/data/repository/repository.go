package repository

import (
	"errors"

	"room-booking/pkg/database"

	"go.uber.org/zap"
)

var (
	// ErrSlotTaken is returned when an insert or update trips the
	// room/date/start-time uniqueness constraint. The database is the last
	// line of defense against two racing writers grabbing the same slot.
	ErrSlotTaken = errors.New("slot already booked")

	// ErrStaleBooking is returned when an optimistic update matched no row,
	// either because the booking vanished or a concurrent writer bumped
	// its version first.
	ErrStaleBooking = errors.New("booking was modified concurrently")
)

type Repository struct {
	Room    RoomRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Room:    NewRoomRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
