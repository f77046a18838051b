package request

type StartPaymentRequest struct {
	BookingID string `json:"bookingId" validate:"required,uuid4"`
	Provider  string `json:"provider" validate:"omitempty,max=50"`
}

type PaymentWebhookRequest struct {
	PaymentReference string `json:"paymentReference" validate:"required"`
	Event            string `json:"event" validate:"required"`
}
