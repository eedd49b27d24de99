package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"stayhub/config"
	"stayhub/infras/otel"
	bookingService "stayhub/internal/domains/booking/service"
	"stayhub/shared/constant"
)

// Scheduler runs the background sweep that cancels bookings whose payment
// window lapsed without a proof of payment.
type Scheduler struct {
	cfg       *config.Config
	otel      otel.Otel
	booking   bookingService.Booking
	scheduler gocron.Scheduler
}

func New(cfg *config.Config, otl otel.Otel, booking bookingService.Booking) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		cfg:       cfg,
		otel:      otl,
		booking:   booking,
		scheduler: s,
	}, nil
}

func (s *Scheduler) Start() error {
	interval := time.Duration(s.cfg.Booking.SweepIntervalMinutes) * time.Minute

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.sweepExpiredUnpaid),
		gocron.WithName("booking-expiry-sweep"),
	)
	if err != nil {
		return fmt.Errorf("failed to register expiry sweep job: %w", err)
	}

	s.scheduler.Start()
	log.Info().Dur("interval", interval).Msg("booking expiry sweep scheduled")

	return nil
}

func (s *Scheduler) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("failed to shut down scheduler")
	}
}

func (s *Scheduler) sweepExpiredUnpaid() {
	ctx, scope := s.otel.NewScope(context.Background(), constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".sweepExpiredUnpaid")
	defer scope.End()

	expired, err := s.booking.ExpireUnpaid(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("booking expiry sweep failed")

		return
	}

	if expired > 0 {
		log.Info().Int("expired", expired).Msg("expired unpaid bookings canceled")
	}
}
