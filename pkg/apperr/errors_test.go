package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsCarryStatusAndCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound(CodeRoomNotFound, "Room not found").Status)
	assert.Equal(t, http.StatusBadRequest, BadRequest(CodeInvalidSlotTime, "Invalid slot time").Status)
	assert.Equal(t, http.StatusConflict, Conflict(CodeBookingOverlap, "Slot already booked").Status)

	err := Conflict(CodeBookingOverlap, "Slot already booked")
	assert.Equal(t, CodeBookingOverlap, err.Code)
	assert.Equal(t, "BOOKING_OVERLAP: Slot already booked", err.Error())
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, CodeInternal, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrorsAsFindsAppError(t *testing.T) {
	var appErr *Error
	wrapped := error(NotFound(CodeBookingNotFound, "Booking not found"))

	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, CodeBookingNotFound, appErr.Code)
}
