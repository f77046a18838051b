package usecase

import (
	"context"
	"errors"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/internal/slots"
	"room-booking/pkg/apperr"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HoldDuration is how long a hold reserves its slot before expiring.
const HoldDuration = 15 * time.Minute

type BookingService interface {
	// CreateBooking books a slot as CONFIRMED immediately, for flows where
	// payment happens out of band.
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	// HoldBooking reserves a slot as DRAFT with a 15 minute expiry.
	HoldBooking(ctx context.Context, req *request.HoldBookingRequest) (*response.BookingResponse, error)
	ConfirmBooking(ctx context.Context, bookingID string, req *request.ConfirmBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) error
	RescheduleBooking(ctx context.Context, bookingID string, req *request.RescheduleBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, roomID, date string) ([]*response.BookingResponse, error)
	// SweepExpired cancels every expired DRAFT/PENDING_PAYMENT hold and
	// returns how many were cancelled. Safe to call repeatedly and
	// concurrently with normal traffic.
	SweepExpired(ctx context.Context) (int64, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(apperr.CodeValidationFailed, utils.FormatValidationErrors(errs))
	}

	booking, err := s.newBooking(ctx, req.RoomID, req.Date, req.StartTime)
	if err != nil {
		return nil, err
	}

	booking.Status = entity.BookingStatusConfirmed
	booking.CustomerName = optionalString(req.CustomerName)
	booking.CustomerEmail = optionalString(req.CustomerEmail)
	booking.CustomerPhone = optionalString(req.CustomerPhone)

	if err := s.insert(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("room_id", booking.RoomID.String()),
		zap.String("date", utils.FormatDate(booking.BookingDate)),
		zap.String("start_time", booking.StartTime),
		zap.Int("price_cents", booking.TotalPriceCents),
	)

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) HoldBooking(ctx context.Context, req *request.HoldBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Hold booking validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(apperr.CodeValidationFailed, utils.FormatValidationErrors(errs))
	}

	booking, err := s.newBooking(ctx, req.RoomID, req.Date, req.StartTime)
	if err != nil {
		return nil, err
	}

	expiresAt := s.now().Add(HoldDuration)
	booking.Status = entity.BookingStatusDraft
	booking.ExpiresAt = &expiresAt
	booking.CustomerName = optionalString(req.CustomerName)
	booking.CustomerEmail = optionalString(req.CustomerEmail)
	booking.CustomerPhone = optionalString(req.CustomerPhone)

	if err := s.insert(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking held",
		zap.String("booking_id", booking.ID.String()),
		zap.String("room_id", booking.RoomID.String()),
		zap.String("date", utils.FormatDate(booking.BookingDate)),
		zap.String("start_time", booking.StartTime),
		zap.Time("expires_at", expiresAt),
	)

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID string, req *request.ConfirmBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Confirm booking validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(apperr.CodeValidationFailed, utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if booking.Status != entity.BookingStatusDraft ||
		(booking.ExpiresAt != nil && booking.ExpiresAt.Before(now)) {
		return nil, apperr.BadRequest(apperr.CodeNotConfirmable, "Booking cannot be confirmed")
	}

	booking.Status = entity.BookingStatusConfirmed
	booking.CustomerName = optionalString(req.CustomerName)
	booking.CustomerEmail = optionalString(req.CustomerEmail)
	booking.CustomerPhone = optionalString(req.CustomerPhone)
	// ExpiresAt is retained for audit; only the payment path clears it.
	booking.UpdatedAt = now

	if err := s.update(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID.String()),
	)

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	// Idempotent: cancelling a cancelled booking issues no write.
	if booking.Status == entity.BookingStatusCancelled {
		return nil
	}

	booking.Status = entity.BookingStatusCancelled
	booking.UpdatedAt = s.now()

	if err := s.update(ctx, booking); err != nil {
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
	)

	return nil
}

func (s *bookingService) RescheduleBooking(ctx context.Context, bookingID string, req *request.RescheduleBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reschedule booking validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(apperr.CodeValidationFailed, utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != entity.BookingStatusConfirmed {
		return nil, apperr.BadRequest(apperr.CodeNotReschedulable, "Booking cannot be rescheduled")
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	if !slots.IsAllowedStart(date, req.StartTime) {
		return nil, apperr.BadRequest(apperr.CodeInvalidSlotTime, "Invalid slot time")
	}

	endTime, err := slots.EndTimeFor(req.StartTime)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := s.now()
	active, err := s.repo.Booking.FindActive(ctx, booking.RoomID, date, now)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if hasConflict(active, req.StartTime, endTime, now, booking.ID) {
		return nil, apperr.Conflict(apperr.CodeBookingOverlap, "Slot already booked")
	}

	// Same identity, new window; price is re-snapshotted from the new date.
	booking.BookingDate = date
	booking.StartTime = req.StartTime
	booking.EndTime = endTime
	booking.TotalPriceCents = slots.PriceCentsFor(date)
	booking.UpdatedAt = now

	if err := s.releaseExpiredHold(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.update(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking rescheduled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("date", utils.FormatDate(date)),
		zap.String("start_time", booking.StartTime),
	)

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return response.BookingToResponse(booking), nil
}

func (s *bookingService) ListBookings(ctx context.Context, roomID, date string) ([]*response.BookingResponse, error) {
	roomUUID, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperr.BadRequest(apperr.CodeValidationFailed, "Invalid room ID")
	}

	parsedDate, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if room == nil {
		return nil, apperr.NotFound(apperr.CodeRoomNotFound, "Room not found")
	}

	// Operational view: every status, ordered by start time.
	bookings, err := s.repo.Booking.FindByRoomAndDate(ctx, roomUUID, parsedDate)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]*response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = response.BookingToResponse(booking)
	}
	return out, nil
}

func (s *bookingService) SweepExpired(ctx context.Context) (int64, error) {
	now := s.now()

	expired, err := s.repo.Booking.FindExpired(ctx, entity.TemporaryStatuses, now)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, len(expired))
	for i, booking := range expired {
		ids[i] = booking.ID
	}

	// The update re-checks status and expiry, so a hold confirmed between
	// the read above and this write is not clobbered.
	cancelled, err := s.repo.Booking.CancelExpired(ctx, ids, entity.TemporaryStatuses, now)
	if err != nil {
		return 0, apperr.Internal(err)
	}

	if cancelled > 0 {
		s.log.Info("Expired holds cancelled",
			zap.Int64("count", cancelled),
		)
	}

	return cancelled, nil
}

// newBooking runs the shared validation pipeline for create and hold:
// room exists, slot time is canonical, no conflict with blocking bookings.
func (s *bookingService) newBooking(ctx context.Context, roomID, date, startTime string) (*entity.Booking, error) {
	roomUUID, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperr.BadRequest(apperr.CodeValidationFailed, "Invalid room ID")
	}

	parsedDate, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if room == nil {
		return nil, apperr.NotFound(apperr.CodeRoomNotFound, "Room not found")
	}

	if !slots.IsAllowedStart(parsedDate, startTime) {
		return nil, apperr.BadRequest(apperr.CodeInvalidSlotTime, "Invalid slot time")
	}

	endTime, err := slots.EndTimeFor(startTime)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := s.now()
	// Unexpired holds block too, otherwise two concurrent holds could both
	// succeed for the same slot.
	active, err := s.repo.Booking.FindActive(ctx, roomUUID, parsedDate, now)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if hasConflict(active, startTime, endTime, now, uuid.Nil) {
		return nil, apperr.Conflict(apperr.CodeBookingOverlap, "Slot already booked")
	}

	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomID:          roomUUID,
		BookingDate:     parsedDate,
		StartTime:       startTime,
		EndTime:         endTime,
		TotalPriceCents: slots.PriceCentsFor(parsedDate),
		Version:         1,
	}, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
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

	return booking, nil
}

// releaseExpiredHold cancels an expired unswept hold still sitting on the
// target slot. Without this the dead hold's row would trip the uniqueness
// index and surface as an overlap even though it no longer blocks.
func (s *bookingService) releaseExpiredHold(ctx context.Context, booking *entity.Booking) error {
	_, err := s.repo.Booking.CancelExpiredAtSlot(ctx,
		booking.RoomID, booking.BookingDate, booking.StartTime, s.now())
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *bookingService) insert(ctx context.Context, booking *entity.Booking) error {
	if err := s.releaseExpiredHold(ctx, booking); err != nil {
		return err
	}

	err := s.repo.Booking.Create(ctx, booking)
	if errors.Is(err, repository.ErrSlotTaken) {
		// A racing writer won the slot between the conflict check and the
		// insert; the unique index surfaces it as the same overlap outcome.
		return apperr.Conflict(apperr.CodeBookingOverlap, "Slot already booked")
	}
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *bookingService) update(ctx context.Context, booking *entity.Booking) error {
	err := s.repo.Booking.Update(ctx, booking)
	if errors.Is(err, repository.ErrSlotTaken) {
		return apperr.Conflict(apperr.CodeBookingOverlap, "Slot already booked")
	}
	if errors.Is(err, repository.ErrStaleBooking) {
		return apperr.Conflict(apperr.CodeConcurrentUpdate, "Booking was modified concurrently")
	}
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
