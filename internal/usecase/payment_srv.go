package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/pkg/apperr"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Webhook event strings accepted from the payment provider.
const (
	WebhookEventPaid      = "PAID"
	WebhookEventFailed    = "FAILED"
	WebhookEventCancelled = "CANCELLED"
)

type PaymentService interface {
	// StartPayment moves an unexpired DRAFT hold to PENDING_PAYMENT and
	// hands back an opaque reference plus the checkout redirect URL.
	StartPayment(ctx context.Context, req *request.StartPaymentRequest) (*response.StartPaymentResponse, error)
	// HandleWebhook applies a provider callback. Duplicate deliveries after
	// the booking reached a final state are accepted as no-ops.
	HandleWebhook(ctx context.Context, req *request.PaymentWebhookRequest) error
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
		now:  time.Now,
	}
}

func (s *paymentService) StartPayment(ctx context.Context, req *request.StartPaymentRequest) (*response.StartPaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Start payment validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(apperr.CodeValidationFailed, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, apperr.BadRequest(apperr.CodeValidationFailed, "Invalid booking ID")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if booking == nil {
		return nil, apperr.NotFound(apperr.CodeBookingNotFound, "Booking not found")
	}

	now := s.now()
	if booking.Status != entity.BookingStatusDraft || paymentExpired(booking, now) {
		return nil, apperr.BadRequest(apperr.CodeNotPayable, "Booking cannot be paid")
	}

	reference := uuid.NewString()
	booking.Status = entity.BookingStatusPendingPayment
	booking.PaymentReference = &reference
	booking.PaymentProvider = optionalString(req.Provider)
	// ExpiresAt stays as set by the hold; the payment window does not
	// extend the reservation.
	booking.UpdatedAt = now

	if err := s.update(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Payment started",
		zap.String("booking_id", booking.ID.String()),
		zap.String("payment_reference", reference),
		zap.String("provider", utils.StringOrEmpty(booking.PaymentProvider)),
	)

	return &response.StartPaymentResponse{
		BookingID:        booking.ID.String(),
		Status:           string(booking.Status),
		PaymentReference: reference,
		PaymentURL:       fmt.Sprintf("/checkout/%s?bookingId=%s", reference, booking.ID.String()),
		ExpiresAt:        booking.ExpiresAt,
	}, nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, req *request.PaymentWebhookRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Webhook validation failed", zap.Any("errors", errs))
		return apperr.BadRequest(apperr.CodeValidationFailed, utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByPaymentReference(ctx, req.PaymentReference)
	if err != nil {
		return apperr.Internal(err)
	}
	if booking == nil {
		return apperr.NotFound(apperr.CodeBookingNotFound, "Booking not found")
	}

	// Providers redeliver webhooks; a booking already in a final state is
	// acknowledged without touching it.
	if booking.Status == entity.BookingStatusConfirmed || booking.Status == entity.BookingStatusCancelled {
		return nil
	}
	if booking.Status != entity.BookingStatusPendingPayment {
		return apperr.BadRequest(apperr.CodeNotAwaitingPayment, "Booking is not awaiting payment")
	}

	now := s.now()
	switch req.Event {
	case WebhookEventPaid:
		if paymentExpired(booking, now) {
			// Payment arrived after the hold lapsed; the money side is the
			// provider's problem, the slot is already forfeit.
			booking.Status = entity.BookingStatusCancelled
		} else {
			booking.Status = entity.BookingStatusConfirmed
			booking.ExpiresAt = nil
		}
	case WebhookEventFailed, WebhookEventCancelled:
		booking.Status = entity.BookingStatusCancelled
	default:
		return apperr.BadRequest(apperr.CodeUnknownWebhookEvent, "Unknown webhook event")
	}

	booking.UpdatedAt = now
	if err := s.update(ctx, booking); err != nil {
		return err
	}

	s.log.Info("Webhook processed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("event", req.Event),
		zap.String("status", string(booking.Status)),
	)

	return nil
}

func (s *paymentService) update(ctx context.Context, booking *entity.Booking) error {
	err := s.repo.Booking.Update(ctx, booking)
	if errors.Is(err, repository.ErrStaleBooking) {
		return apperr.Conflict(apperr.CodeConcurrentUpdate, "Booking was modified concurrently")
	}
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// paymentExpired treats a missing expiry as expired: only a live hold
// window makes a booking payable.
func paymentExpired(booking *entity.Booking, now time.Time) bool {
	return booking.ExpiresAt == nil || booking.ExpiresAt.Before(now)
}
