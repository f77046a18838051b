package usecase

import (
	"context"

	"room-booking/internal/data/repository"
	"room-booking/internal/dto/response"
	"room-booking/pkg/apperr"

	"go.uber.org/zap"
)

type RoomService interface {
	ListRooms(ctx context.Context) ([]*response.RoomResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) ListRooms(ctx context.Context) ([]*response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAllActive(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]*response.RoomResponse, len(rooms))
	for i, room := range rooms {
		out[i] = response.RoomToResponse(room)
	}
	return out, nil
}
