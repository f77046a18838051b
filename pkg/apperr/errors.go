package apperr

import (
	"fmt"
	"net/http"
)

// Machine-readable codes the frontend switches on.
const (
	CodeRoomNotFound        = "ROOM_NOT_FOUND"
	CodeBookingNotFound     = "BOOKING_NOT_FOUND"
	CodeInvalidSlotTime     = "INVALID_SLOT_TIME"
	CodeInvalidDateFormat   = "INVALID_DATE_FORMAT"
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeBookingOverlap      = "BOOKING_OVERLAP"
	CodeNotConfirmable      = "BOOKING_NOT_CONFIRMABLE"
	CodeNotReschedulable    = "BOOKING_NOT_RESCHEDULABLE"
	CodeNotPayable          = "BOOKING_NOT_PAYABLE"
	CodeNotAwaitingPayment  = "BOOKING_NOT_AWAITING_PAYMENT"
	CodeUnknownWebhookEvent = "UNKNOWN_WEBHOOK_EVENT"
	CodeConcurrentUpdate    = "CONCURRENT_UPDATE"
	CodeInternal            = "INTERNAL_SERVER_ERROR"
)

// Error is an application error with an HTTP status and a stable code.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(code, message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: code, Message: message}
}

func BadRequest(code, message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Status: http.StatusConflict, Code: code, Message: message}
}

func Internal(err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}
