// Package worker runs the background expiry sweep that cancels lapsed
// holds so their slots become bookable again.
package worker

import (
	"context"
	"time"

	"room-booking/internal/usecase"

	"go.uber.org/zap"
)

type Sweeper struct {
	bookings usecase.BookingService
	interval time.Duration
	log      *zap.Logger
	stopChan chan struct{}
}

func NewSweeper(bookings usecase.BookingService, interval time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{
		bookings: bookings,
		interval: interval,
		log:      log.With(zap.String("worker", "sweeper")),
		stopChan: make(chan struct{}),
	}
}

// Start launches the sweep loop in its own goroutine. The first sweep runs
// immediately so a restart does not leave stale holds lying around for a
// full interval.
func (s *Sweeper) Start(ctx context.Context) {
	s.log.Info("Starting expiry sweeper", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Sweeper) Stop() {
	s.log.Info("Stopping expiry sweeper")
	close(s.stopChan)
}

func (s *Sweeper) run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopChan:
			s.log.Info("Expiry sweeper stopped")
			return
		case <-ctx.Done():
			s.log.Info("Expiry sweeper cancelled")
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	cancelled, err := s.bookings.SweepExpired(ctx)
	if err != nil {
		s.log.Error("Expiry sweep failed", zap.Error(err))
		return
	}
	if cancelled > 0 {
		s.log.Info("Expiry sweep completed", zap.Int64("cancelled", cancelled))
	}
}
