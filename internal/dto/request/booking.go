package request

// Field names follow the public API contract (camelCase), which the booking
// frontend already depends on.

type CreateBookingRequest struct {
	RoomID        string `json:"roomId" validate:"required,uuid4"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"startTime" validate:"required,datetime=15:04"`
	CustomerName  string `json:"customerName" validate:"omitempty,max=100"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email,max=100"`
	CustomerPhone string `json:"customerPhone" validate:"omitempty,max=50"`
}

type HoldBookingRequest struct {
	RoomID        string `json:"roomId" validate:"required,uuid4"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"startTime" validate:"required,datetime=15:04"`
	CustomerName  string `json:"customerName" validate:"omitempty,max=100"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email,max=100"`
	CustomerPhone string `json:"customerPhone" validate:"omitempty,max=50"`
}

// Customer details are optional on hold but mandatory at confirmation.
type ConfirmBookingRequest struct {
	CustomerName  string `json:"customerName" validate:"required,max=100"`
	CustomerEmail string `json:"customerEmail" validate:"required,email,max=100"`
	CustomerPhone string `json:"customerPhone" validate:"required,max=50"`
}

type RescheduleBookingRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
}
