package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/dto/request"
	"room-booking/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPaymentMovesDraftToPendingPayment(t *testing.T) {
	f := newFixture()
	held := f.seedBooking(saturday, "10:00", entity.BookingStatusDraft, timePtr(f.now.Add(10*time.Minute)))
	svc := f.paymentService()

	resp, err := svc.StartPayment(context.Background(), &request.StartPaymentRequest{
		BookingID: held.ID.String(),
		Provider:  "stripe",
	})

	require.NoError(t, err)
	assert.Equal(t, "PENDING_PAYMENT", resp.Status)
	assert.NotEmpty(t, resp.PaymentReference)
	assert.Equal(t,
		fmt.Sprintf("/checkout/%s?bookingId=%s", resp.PaymentReference, held.ID),
		resp.PaymentURL,
	)
	// Starting payment does not extend the hold window.
	require.NotNil(t, resp.ExpiresAt)
	assert.Equal(t, f.now.Add(10*time.Minute), *resp.ExpiresAt)
	assert.Equal(t, entity.BookingStatusPendingPayment, held.Status)
}

func TestStartPaymentExpiredHold(t *testing.T) {
	f := newFixture()
	held := f.seedBooking(saturday, "10:00", entity.BookingStatusDraft, timePtr(f.now.Add(-time.Minute)))
	svc := f.paymentService()

	_, err := svc.StartPayment(context.Background(), &request.StartPaymentRequest{
		BookingID: held.ID.String(),
	})

	assertAppError(t, err, apperr.CodeNotPayable)
}

func TestStartPaymentDraftWithoutExpiryIsNotPayable(t *testing.T) {
	f := newFixture()
	held := f.seedBooking(saturday, "10:00", entity.BookingStatusDraft, nil)
	svc := f.paymentService()

	_, err := svc.StartPayment(context.Background(), &request.StartPaymentRequest{
		BookingID: held.ID.String(),
	})

	assertAppError(t, err, apperr.CodeNotPayable)
}

func TestStartPaymentConfirmedBooking(t *testing.T) {
	f := newFixture()
	booked := f.seedBooking(saturday, "10:00", entity.BookingStatusConfirmed, nil)
	svc := f.paymentService()

	_, err := svc.StartPayment(context.Background(), &request.StartPaymentRequest{
		BookingID: booked.ID.String(),
	})

	assertAppError(t, err, apperr.CodeNotPayable)
}

func TestStartPaymentUnknownBooking(t *testing.T) {
	f := newFixture()
	svc := f.paymentService()

	_, err := svc.StartPayment(context.Background(), &request.StartPaymentRequest{
		BookingID: "0b2f8f6e-1d8c-4a5b-9f3e-6c1a2b3c4d5e",
	})

	assertAppError(t, err, apperr.CodeBookingNotFound)
}

func pendingPayment(f *fixture, expiresAt *time.Time) (*entity.Booking, string) {
	booking := f.seedBooking(saturday, "10:00", entity.BookingStatusPendingPayment, expiresAt)
	reference := "ref-" + booking.ID.String()
	booking.PaymentReference = &reference
	return booking, reference
}

func TestWebhookPaidConfirmsAndClearsExpiry(t *testing.T) {
	f := newFixture()
	booking, reference := pendingPayment(f, timePtr(f.now.Add(5*time.Minute)))
	svc := f.paymentService()

	err := svc.HandleWebhook(context.Background(), &request.PaymentWebhookRequest{
		PaymentReference: reference,
		Event:            "PAID",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.Nil(t, booking.ExpiresAt)
}

func TestWebhookPaidAfterExpiryCancels(t *testing.T) {
	f := newFixture()
	booking, reference := pendingPayment(f, timePtr(f.now.Add(-time.Minute)))
	svc := f.paymentService()

	err := svc.HandleWebhook(context.Background(), &request.PaymentWebhookRequest{
		PaymentReference: reference,
		Event:            "PAID",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)
}

func TestWebhookFailedCancels(t *testing.T) {
	f := newFixture()
	booking, reference := pendingPayment(f, timePtr(f.now.Add(5*time.Minute)))
	svc := f.paymentService()

	err := svc.HandleWebhook(context.Background(), &request.PaymentWebhookRequest{
		PaymentReference: reference,
		Event:            "FAILED",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)
}

func TestWebhookCancelledCancels(t *testing.T) {
	f := newFixture()
	booking, reference := pendingPayment(f, timePtr(f.now.Add(5*time.Minute)))
	svc := f.paymentService()

	err := svc.HandleWebhook(context.Background(), &request.PaymentWebhookRequest{
		PaymentReference: reference,
		Event:            "CANCELLED",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)
}

func TestWebhookDuplicateDeliveryIsNoOp(t *testing.T) {
	f := newFixture()
	booking, reference := pendingPayment(f, timePtr(f.now.Add(5*time.Minute)))
	svc := f.paymentService()

	require.NoError(t, svc.HandleWebhook(context.Background(), &request.PaymentWebhookRequest{
		PaymentReference: reference,
		Event:            "PAID",
	}))
	writesAfterFirst := f.bookingRepo.updateCalls

	// Redelivery of the same event after confirmation writes nothing.
	require.NoError(t, svc.HandleWebhook(context.Background(), &request.PaymentWebhookRequest{
		PaymentReference: reference,
		Event:            "PAID",
	}))
	assert.Equal(t, writesAfterFirst, f.bookingRepo.updateCalls)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
}

func TestWebhookUnknownEventLeavesBookingUntouched(t *testing.T) {
	f := newFixture()
	booking, reference := pendingPayment(f, timePtr(f.now.Add(5*time.Minute)))
	svc := f.paymentService()

	err := svc.HandleWebhook(context.Background(), &request.PaymentWebhookRequest{
		PaymentReference: reference,
		Event:            "REFUNDED",
	})

	assertAppError(t, err, apperr.CodeUnknownWebhookEvent)
	assert.Equal(t, entity.BookingStatusPendingPayment, booking.Status)
	assert.Zero(t, f.bookingRepo.updateCalls)
}

func TestWebhookBookingNotAwaitingPayment(t *testing.T) {
	f := newFixture()
	booking := f.seedBooking(saturday, "10:00", entity.BookingStatusDraft, timePtr(f.now.Add(5*time.Minute)))
	reference := "ref-" + booking.ID.String()
	booking.PaymentReference = &reference
	svc := f.paymentService()

	err := svc.HandleWebhook(context.Background(), &request.PaymentWebhookRequest{
		PaymentReference: reference,
		Event:            "PAID",
	})

	assertAppError(t, err, apperr.CodeNotAwaitingPayment)
}

func TestWebhookUnknownReference(t *testing.T) {
	f := newFixture()
	svc := f.paymentService()

	err := svc.HandleWebhook(context.Background(), &request.PaymentWebhookRequest{
		PaymentReference: "no-such-reference",
		Event:            "PAID",
	})

	assertAppError(t, err, apperr.CodeBookingNotFound)
}
