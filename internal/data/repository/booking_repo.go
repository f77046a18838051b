package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

const bookingColumns = `
	id, room_id, booking_date, start_time, end_time, status, total_price_cents,
	expires_at, customer_name, customer_email, customer_phone,
	payment_reference, payment_provider, version, created_at, updated_at`

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByPaymentReference(ctx context.Context, reference string) (*entity.Booking, error)
	// Update writes the full row with an optimistic version check and bumps
	// the version on success. Returns ErrStaleBooking when no row matched.
	Update(ctx context.Context, booking *entity.Booking) error

	// Business queries
	FindByRoomAndDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*entity.Booking, error)
	// FindActive returns the bookings that currently block availability:
	// CONFIRMED, or a temporary status with expires_at still in the future.
	FindActive(ctx context.Context, roomID uuid.UUID, date time.Time, now time.Time) ([]*entity.Booking, error)
	FindExpired(ctx context.Context, statuses []entity.BookingStatus, now time.Time) ([]*entity.Booking, error)
	// CancelExpired flips the given bookings to CANCELLED, re-checking
	// status and expiry inside the statement so a booking confirmed after
	// the caller's snapshot read is left alone.
	CancelExpired(ctx context.Context, ids []uuid.UUID, statuses []entity.BookingStatus, now time.Time) (int64, error)
	// CancelExpiredAtSlot cancels an expired unswept hold still occupying
	// the given slot, freeing its row in the uniqueness index. A live hold
	// or a confirmed booking is never touched.
	CancelExpiredAtSlot(ctx context.Context, roomID uuid.UUID, date time.Time, startTime string, now time.Time) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, room_id, booking_date, start_time, end_time, status,
			total_price_cents, expires_at, customer_name, customer_email, customer_phone,
			payment_reference, payment_provider, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.RoomID,
		booking.BookingDate,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.TotalPriceCents,
		booking.ExpiresAt,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.PaymentReference,
		booking.PaymentProvider,
		booking.Version,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("room_id", booking.RoomID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByPaymentReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query := `SELECT` + bookingColumns + ` FROM bookings WHERE payment_reference = $1`

	booking, err := r.scanOne(r.db.QueryRow(ctx, query, reference))
	if err != nil {
		r.log.Error("Failed to find booking by payment reference",
			zap.Error(err),
			zap.String("payment_reference", reference),
		)
		return nil, fmt.Errorf("find booking by payment reference %s: %w", reference, err)
	}

	return booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET booking_date = $3, start_time = $4, end_time = $5, status = $6,
		    total_price_cents = $7, expires_at = $8, customer_name = $9,
		    customer_email = $10, customer_phone = $11, payment_reference = $12,
		    payment_provider = $13, version = version + 1, updated_at = $14
		WHERE id = $1 AND version = $2
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Version,
		booking.BookingDate,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.TotalPriceCents,
		booking.ExpiresAt,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.PaymentReference,
		booking.PaymentProvider,
		booking.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrStaleBooking
	}

	booking.Version++
	return nil
}

func (r *bookingRepository) FindByRoomAndDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	query := `SELECT` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1 AND booking_date = $2
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, roomID, date)
	if err != nil {
		r.log.Error("Failed to find bookings by room and date",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find bookings for room %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *bookingRepository) FindActive(ctx context.Context, roomID uuid.UUID, date time.Time, now time.Time) ([]*entity.Booking, error) {
	query := `SELECT` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1 AND booking_date = $2
		  AND (status = 'CONFIRMED'
		       OR (status IN ('DRAFT', 'PENDING_PAYMENT') AND expires_at > $3))
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, roomID, date, now)
	if err != nil {
		r.log.Error("Failed to find active bookings",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find active bookings for room %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *bookingRepository) FindExpired(ctx context.Context, statuses []entity.BookingStatus, now time.Time) ([]*entity.Booking, error) {
	query := `SELECT` + bookingColumns + `
		FROM bookings
		WHERE status = ANY($1) AND expires_at <= $2
	`

	rows, err := r.db.Query(ctx, query, statusStrings(statuses), now)
	if err != nil {
		r.log.Error("Failed to find expired bookings", zap.Error(err))
		return nil, fmt.Errorf("find expired bookings: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *bookingRepository) CancelExpired(ctx context.Context, ids []uuid.UUID, statuses []entity.BookingStatus, now time.Time) (int64, error) {
	query := `
		UPDATE bookings
		SET status = 'CANCELLED', version = version + 1, updated_at = NOW()
		WHERE id = ANY($1) AND status = ANY($2) AND expires_at <= $3
	`

	result, err := r.db.Exec(ctx, query, ids, statusStrings(statuses), now)
	if err != nil {
		r.log.Error("Failed to cancel expired bookings",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return 0, fmt.Errorf("cancel expired bookings: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *bookingRepository) CancelExpiredAtSlot(ctx context.Context, roomID uuid.UUID, date time.Time, startTime string, now time.Time) (int64, error) {
	query := `
		UPDATE bookings
		SET status = 'CANCELLED', version = version + 1, updated_at = NOW()
		WHERE room_id = $1 AND booking_date = $2 AND start_time = $3
		  AND status IN ('DRAFT', 'PENDING_PAYMENT') AND expires_at <= $4
	`

	result, err := r.db.Exec(ctx, query, roomID, date, startTime, now)
	if err != nil {
		r.log.Error("Failed to cancel expired hold at slot",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.String("start_time", startTime),
		)
		return 0, fmt.Errorf("cancel expired hold at slot %s: %w", startTime, err)
	}

	return result.RowsAffected(), nil
}

func (r *bookingRepository) scanOne(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.TotalPriceCents,
		&booking.ExpiresAt,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.PaymentReference,
		&booking.PaymentProvider,
		&booking.Version,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) scanAll(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.RoomID,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.TotalPriceCents,
			&booking.ExpiresAt,
			&booking.CustomerName,
			&booking.CustomerEmail,
			&booking.CustomerPhone,
			&booking.PaymentReference,
			&booking.PaymentProvider,
			&booking.Version,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func statusStrings(statuses []entity.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
