package usecase

import (
	"context"
	"time"

	"room-booking/internal/data/repository"
	"room-booking/internal/dto/response"
	"room-booking/internal/slots"
	"room-booking/pkg/apperr"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	GetAvailability(ctx context.Context, roomID, date string) (*response.AvailabilityResponse, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
		now:  time.Now,
	}
}

func (s *availabilityService) GetAvailability(ctx context.Context, roomID, date string) (*response.AvailabilityResponse, error) {
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

	now := s.now()
	blocking, err := s.repo.Booking.FindActive(ctx, roomUUID, parsedDate, now)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	priceCents := slots.PriceCentsFor(parsedDate)
	defs := slots.AllowedSlotsFor(parsedDate)
	slotInfos := make([]response.SlotInfo, len(defs))

	for i, def := range defs {
		status := response.SlotAvailable
		if hasConflict(blocking, def.Start, def.End, now, uuid.Nil) {
			status = response.SlotUnavailable
		}
		slotInfos[i] = response.SlotInfo{
			StartTime:  def.Start,
			EndTime:    def.End,
			Status:     status,
			PriceCents: priceCents,
		}
	}

	return &response.AvailabilityResponse{
		Date:   utils.FormatDate(parsedDate),
		RoomID: roomUUID.String(),
		Slots:  slotInfos,
	}, nil
}
