package usecase

import (
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/slots"

	"github.com/google/uuid"
)

// blocksAvailability is the predicate deciding whether a booking counts
// against availability at a given instant. CONFIRMED always blocks; a
// temporary hold blocks only until its expiry, even before the sweep has
// physically cancelled it. Everything else is invisible.
func blocksAvailability(booking *entity.Booking, now time.Time) bool {
	switch booking.Status {
	case entity.BookingStatusConfirmed:
		return true
	case entity.BookingStatusDraft, entity.BookingStatusPendingPayment:
		return booking.ExpiresAt != nil && booking.ExpiresAt.After(now)
	default:
		return false
	}
}

// hasConflict reports whether the candidate window overlaps any blocking
// booking's buffered window. The cleanup buffer is applied to the existing
// booking's end only, never to the candidate. excludeID skips the booking
// being rescheduled; pass uuid.Nil otherwise.
func hasConflict(bookings []*entity.Booking, startTime, endTime string, now time.Time, excludeID uuid.UUID) bool {
	for _, booking := range bookings {
		if booking.ID == excludeID {
			continue
		}
		if !blocksAvailability(booking, now) {
			continue
		}
		blockingEnd, err := slots.BlockingEndFor(booking.EndTime)
		if err != nil {
			continue
		}
		if slots.Overlaps(startTime, endTime, booking.StartTime, blockingEnd) {
			return true
		}
	}
	return false
}
