package usecase

import (
	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Availability AvailabilityService
	Booking      BookingService
	Payment      PaymentService
	Room         RoomService
}

func NewService(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *Service {
	return &Service{
		Availability: NewAvailabilityService(repo, logger),
		Booking:      NewBookingService(repo, logger),
		Payment:      NewPaymentService(repo, logger),
		Room:         NewRoomService(repo, logger),
	}
}
