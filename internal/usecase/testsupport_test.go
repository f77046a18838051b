package usecase

import (
	"context"
	"sort"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. They mirror the observable behavior of the
// Postgres implementations, including nil-nil on missing rows and the
// partial uniqueness over live statuses.

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room
}

func newFakeRoomRepo(rooms ...*entity.Room) *fakeRoomRepo {
	f := &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)}
	for _, room := range rooms {
		f.rooms[room.ID] = room
	}
	return f
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) FindAllActive(_ context.Context) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range f.rooms {
		if room.IsActive {
			out = append(out, room)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeBookingRepo struct {
	bookings    map[uuid.UUID]*entity.Booking
	createCalls int
	updateCalls int
	createErr   error
	updateErr   error

	// afterFindExpired runs after FindExpired returns its snapshot, letting
	// tests mutate state between the sweep's read and its write.
	afterFindExpired func()
}

func newFakeBookingRepo(bookings ...*entity.Booking) *fakeBookingRepo {
	f := &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
	for _, booking := range bookings {
		f.bookings[booking.ID] = booking
	}
	return f
}

func liveStatus(status entity.BookingStatus) bool {
	return status == entity.BookingStatusDraft ||
		status == entity.BookingStatusPendingPayment ||
		status == entity.BookingStatusConfirmed
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	if liveStatus(booking.Status) {
		for _, existing := range f.bookings {
			if liveStatus(existing.Status) &&
				existing.RoomID == booking.RoomID &&
				existing.BookingDate.Equal(booking.BookingDate) &&
				existing.StartTime == booking.StartTime {
				return repository.ErrSlotTaken
			}
		}
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByPaymentReference(_ context.Context, reference string) (*entity.Booking, error) {
	for _, booking := range f.bookings {
		if booking.PaymentReference != nil && *booking.PaymentReference == reference {
			return booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.bookings[booking.ID]; !ok {
		return repository.ErrStaleBooking
	}
	booking.Version++
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByRoomAndDate(_ context.Context, roomID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if booking.RoomID == roomID && booking.BookingDate.Equal(date) {
			out = append(out, booking)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (f *fakeBookingRepo) FindActive(_ context.Context, roomID uuid.UUID, date time.Time, now time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if booking.RoomID != roomID || !booking.BookingDate.Equal(date) {
			continue
		}
		switch booking.Status {
		case entity.BookingStatusConfirmed:
			out = append(out, booking)
		case entity.BookingStatusDraft, entity.BookingStatusPendingPayment:
			if booking.ExpiresAt != nil && booking.ExpiresAt.After(now) {
				out = append(out, booking)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (f *fakeBookingRepo) FindExpired(_ context.Context, statuses []entity.BookingStatus, now time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.bookings {
		if booking.ExpiresAt == nil || booking.ExpiresAt.After(now) {
			continue
		}
		for _, status := range statuses {
			if booking.Status == status {
				out = append(out, booking)
				break
			}
		}
	}
	if f.afterFindExpired != nil {
		f.afterFindExpired()
	}
	return out, nil
}

func (f *fakeBookingRepo) CancelExpiredAtSlot(_ context.Context, roomID uuid.UUID, date time.Time, startTime string, now time.Time) (int64, error) {
	var cancelled int64
	for _, booking := range f.bookings {
		if booking.RoomID != roomID || !booking.BookingDate.Equal(date) || booking.StartTime != startTime {
			continue
		}
		if booking.Status != entity.BookingStatusDraft && booking.Status != entity.BookingStatusPendingPayment {
			continue
		}
		if booking.ExpiresAt == nil || booking.ExpiresAt.After(now) {
			continue
		}
		booking.Status = entity.BookingStatusCancelled
		booking.Version++
		cancelled++
	}
	return cancelled, nil
}

func (f *fakeBookingRepo) CancelExpired(_ context.Context, ids []uuid.UUID, statuses []entity.BookingStatus, now time.Time) (int64, error) {
	var cancelled int64
	for _, id := range ids {
		booking, ok := f.bookings[id]
		if !ok || booking.ExpiresAt == nil || booking.ExpiresAt.After(now) {
			continue
		}
		for _, status := range statuses {
			if booking.Status == status {
				booking.Status = entity.BookingStatusCancelled
				booking.Version++
				cancelled++
				break
			}
		}
	}
	return cancelled, nil
}

// Fixture dates around the first weekend of March 2026.
var (
	saturdayStr  = "2026-03-07"
	fridayStr    = "2026-03-06"
	wednesdayStr = "2026-03-04"

	saturday  = time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	wednesday = time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	fixedNow = time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)
)

type fixture struct {
	roomRepo    *fakeRoomRepo
	bookingRepo *fakeBookingRepo
	repo        *repository.Repository
	room        *entity.Room
	now         time.Time
}

func newFixture() *fixture {
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: fixedNow,
			UpdatedAt: fixedNow,
		},
		Name:     "Party Room",
		Capacity: 20,
		IsActive: true,
	}
	roomRepo := newFakeRoomRepo(room)
	bookingRepo := newFakeBookingRepo()
	return &fixture{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		repo:        &repository.Repository{Room: roomRepo, Booking: bookingRepo},
		room:        room,
		now:         fixedNow,
	}
}

func (f *fixture) bookingService() *bookingService {
	return &bookingService{
		repo: f.repo,
		log:  zap.NewNop(),
		now:  func() time.Time { return f.now },
	}
}

func (f *fixture) availabilityService() *availabilityService {
	return &availabilityService{
		repo: f.repo,
		log:  zap.NewNop(),
		now:  func() time.Time { return f.now },
	}
}

func (f *fixture) paymentService() *paymentService {
	return &paymentService{
		repo: f.repo,
		log:  zap.NewNop(),
		now:  func() time.Time { return f.now },
	}
}

func (f *fixture) seedBooking(date time.Time, startTime string, status entity.BookingStatus, expiresAt *time.Time) *entity.Booking {
	endTime, _ := timeAfterSlot(startTime)
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: fixedNow,
			UpdatedAt: fixedNow,
		},
		RoomID:          f.room.ID,
		BookingDate:     date,
		StartTime:       startTime,
		EndTime:         endTime,
		Status:          status,
		TotalPriceCents: 26000,
		ExpiresAt:       expiresAt,
		Version:         1,
	}
	f.bookingRepo.bookings[booking.ID] = booking
	return booking
}

func timeAfterSlot(start string) (string, error) {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return "", err
	}
	return t.Add(150 * time.Minute).Format("15:04"), nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
