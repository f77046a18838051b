// Package slots holds the slot generation and pricing rules for the
// facility. Everything here is a pure function of the calendar date; all
// wall-clock times are zero-padded "HH:MM" strings, which compare correctly
// as plain strings.
package slots

import (
	"fmt"
	"time"
)

const (
	// SlotDurationMinutes is the canonical length of every bookable window.
	SlotDurationMinutes = 150

	// CleanupMinutes is the buffer after a booking's nominal end during
	// which the room still blocks the next slot. Never stored, never shown
	// to the customer.
	CleanupMinutes = 30

	TimeLayout = "15:04"
	DateLayout = "2006-01-02"
)

// SlotDef is a bookable window for one date.
type SlotDef struct {
	Start string
	End   string
}

var (
	weekendSlots = []SlotDef{
		{Start: "10:00", End: "12:30"},
		{Start: "13:00", End: "15:30"},
		{Start: "16:00", End: "18:30"},
		{Start: "19:00", End: "21:30"},
	}
	weekdaySlots = []SlotDef{
		{Start: "16:00", End: "18:30"},
		{Start: "19:00", End: "21:30"},
	}
)

// AllowedSlotsFor returns the bookable windows for a date in ascending
// start-time order. Callers index slots positionally, so the order matters.
func AllowedSlotsFor(date time.Time) []SlotDef {
	src := weekdaySlots
	if isWeekend(date) {
		src = weekendSlots
	}
	out := make([]SlotDef, len(src))
	copy(out, src)
	return out
}

// PriceCentsFor returns the slot price for a date. Fri/Sat/Sun are the
// expensive days; the price depends on the date only, never on room or slot.
func PriceCentsFor(date time.Time) int {
	switch date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return 26000
	default:
		return 21000
	}
}

// EndTimeFor derives the end time from a slot start without consulting the
// window list. Returns an error for a malformed time string.
func EndTimeFor(start string) (string, error) {
	return addMinutes(start, SlotDurationMinutes)
}

// BlockingEndFor returns the end of a booking's blocking window, i.e. its
// nominal end plus the cleanup buffer. Used only for overlap computation.
func BlockingEndFor(end string) (string, error) {
	return addMinutes(end, CleanupMinutes)
}

// IsAllowedStart reports whether start matches a canonical slot start for
// the date. Bookings always occupy exactly one canonical slot.
func IsAllowedStart(date time.Time, start string) bool {
	for _, slot := range AllowedSlotsFor(date) {
		if slot.Start == start {
			return true
		}
	}
	return false
}

// Overlaps is the half-open interval overlap test between a candidate
// window and an existing booking's buffered window:
// slotStart < blockingEnd AND slotEnd > bookingStart.
func Overlaps(slotStart, slotEnd, bookingStart, bookingBlockingEnd string) bool {
	return slotStart < bookingBlockingEnd && slotEnd > bookingStart
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func addMinutes(value string, minutes int) (string, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return "", fmt.Errorf("parse time %q: %w", value, err)
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format(TimeLayout), nil
}
