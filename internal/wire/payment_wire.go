package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	checkoutHandler *adaptor.CheckoutHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// POST /api/payments/start - Move a held booking to PENDING_PAYMENT
	r.Post("/api/payments/start", paymentHandler.StartPayment)

	// POST /api/payments/webhook - Provider callback (PAID / FAILED / CANCELLED)
	r.Post("/api/payments/webhook", paymentHandler.HandleWebhook)

	// GET /checkout/{paymentReference}?bookingId= - Hosted checkout simulator
	r.Get("/checkout/{paymentReference}", checkoutHandler.ShowCheckout)
}
