package adaptor

import (
	"encoding/json"
	"net/http"

	"room-booking/internal/dto/request"
	"room-booking/internal/usecase"
	"room-booking/pkg/apperr"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// StartPayment handles POST /api/payments/start
func (h *PaymentHandler) StartPayment(w http.ResponseWriter, r *http.Request) {
	var req request.StartPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, r, apperr.BadRequest(apperr.CodeValidationFailed, "Invalid request body"))
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, r, validationErrors)
		return
	}

	payment, err := h.service.StartPayment(r.Context(), &req)
	if err != nil {
		h.log.Warn("Start payment failed", zap.Error(err), zap.String("booking_id", req.BookingID))
		utils.ResponseError(w, r, err)
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// HandleWebhook handles POST /api/payments/webhook
func (h *PaymentHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, r, apperr.BadRequest(apperr.CodeValidationFailed, "Invalid request body"))
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, r, validationErrors)
		return
	}

	if err := h.service.HandleWebhook(r.Context(), &req); err != nil {
		h.log.Warn("Webhook failed",
			zap.Error(err),
			zap.String("payment_reference", req.PaymentReference),
			zap.String("event", req.Event),
		)
		utils.ResponseError(w, r, err)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
