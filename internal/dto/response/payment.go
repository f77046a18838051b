package response

import "time"

type StartPaymentResponse struct {
	BookingID        string     `json:"bookingId"`
	Status           string     `json:"status"`
	PaymentReference string     `json:"paymentReference"`
	PaymentURL       string     `json:"paymentUrl"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"`
}
