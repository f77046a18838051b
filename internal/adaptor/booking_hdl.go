package adaptor

import (
	"encoding/json"
	"net/http"

	"room-booking/internal/dto/request"
	"room-booking/internal/usecase"
	"room-booking/pkg/apperr"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, r, apperr.BadRequest(apperr.CodeValidationFailed, "Invalid request body"))
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, r, validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// HoldBooking handles POST /api/bookings/hold
func (h *BookingHandler) HoldBooking(w http.ResponseWriter, r *http.Request) {
	var req request.HoldBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, r, apperr.BadRequest(apperr.CodeValidationFailed, "Invalid request body"))
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, r, validationErrors)
		return
	}

	booking, err := h.service.HoldBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "hold booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// ConfirmBooking handles POST /api/bookings/{id}/confirm
func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.ConfirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, r, apperr.BadRequest(apperr.CodeValidationFailed, "Invalid request body"))
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, r, validationErrors)
		return
	}

	booking, err := h.service.ConfirmBooking(r.Context(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, r, err, "confirm booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles PATCH /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	if err := h.service.CancelBooking(r.Context(), bookingID); err != nil {
		h.handleServiceError(w, r, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// RescheduleBooking handles PATCH /api/bookings/{id}/reschedule
func (h *BookingHandler) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.RescheduleBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, r, apperr.BadRequest(apperr.CodeValidationFailed, "Invalid request body"))
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, r, validationErrors)
		return
	}

	booking, err := h.service.RescheduleBooking(r.Context(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, r, err, "reschedule booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	booking, err := h.service.GetBooking(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, r, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ListBookings handles GET /api/bookings?roomId=&date=
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("roomId")
	date := r.URL.Query().Get("date")
	if roomID == "" || date == "" {
		utils.ResponseError(w, r, apperr.BadRequest(apperr.CodeValidationFailed, "roomId and date are required"))
		return
	}

	bookings, err := h.service.ListBookings(r.Context(), roomID, date)
	if err != nil {
		h.handleServiceError(w, r, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	h.log.Warn("Booking operation failed",
		zap.Error(err),
		zap.String("operation", operation),
	)
	utils.ResponseError(w, r, err)
}
