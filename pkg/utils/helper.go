package utils

import (
	"time"

	"room-booking/pkg/apperr"
)

const DateLayout = "2006-01-02"

// ParseDate parses a "2006-01-02" calendar date from a request.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperr.BadRequest(apperr.CodeInvalidDateFormat, "Invalid date format, expected YYYY-MM-DD")
	}
	return date, nil
}

// FormatDate renders a calendar date for a response payload.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// StringOrEmpty unwraps an optional string column.
func StringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
