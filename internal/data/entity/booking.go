package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusDraft          BookingStatus = "DRAFT"
	BookingStatusCreated        BookingStatus = "CREATED" // legacy, never blocks availability
	BookingStatusPendingPayment BookingStatus = "PENDING_PAYMENT"
	BookingStatusConfirmed      BookingStatus = "CONFIRMED"
	BookingStatusCancelled      BookingStatus = "CANCELLED"
	BookingStatusCompleted      BookingStatus = "COMPLETED"
	BookingStatusNoShow         BookingStatus = "NO_SHOW"
)

// TemporaryStatuses are the hold statuses subject to automatic expiry.
var TemporaryStatuses = []BookingStatus{
	BookingStatusDraft,
	BookingStatusPendingPayment,
}

// Booking occupies exactly one canonical slot on one date in one room.
// StartTime/EndTime are wall-clock "HH:MM" strings in the facility timezone.
// Bookings are never deleted; cancellation is a status change.
type Booking struct {
	Base
	RoomID           uuid.UUID     `db:"room_id"`
	BookingDate      time.Time     `db:"booking_date"`
	StartTime        string        `db:"start_time"`
	EndTime          string        `db:"end_time"`
	Status           BookingStatus `db:"status"`
	TotalPriceCents  int           `db:"total_price_cents"`
	ExpiresAt        *time.Time    `db:"expires_at"`
	CustomerName     *string       `db:"customer_name"`
	CustomerEmail    *string       `db:"customer_email"`
	CustomerPhone    *string       `db:"customer_phone"`
	PaymentReference *string       `db:"payment_reference"`
	PaymentProvider  *string       `db:"payment_provider"`
	Version          int           `db:"version"`
}
