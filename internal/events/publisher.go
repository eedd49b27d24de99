package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"stayhub/config"
	"stayhub/infras/kafka"
	bookingModel "stayhub/internal/domains/booking/model"
	"stayhub/shared/timezone"
)

// BookingStatusEvent is the wire payload emitted on every lifecycle change.
type BookingStatusEvent struct {
	BookingID  int64     `json:"booking_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishStatusChange(ctx context.Context, bookingID int64, status bookingModel.Status)
}

type publisherImpl struct {
	cfg    *config.Config
	client kafka.Client
}

func NewPublisher(cfg *config.Config, client kafka.Client) Publisher {
	return &publisherImpl{
		cfg:    cfg,
		client: client,
	}
}

// PublishStatusChange is fire-and-forget: the booking write has already
// committed, so a publish failure is logged but never surfaced to the caller.
func (p *publisherImpl) PublishStatusChange(ctx context.Context, bookingID int64, status bookingModel.Status) {
	event := BookingStatusEvent{
		BookingID:  bookingID,
		Status:     string(status),
		OccurredAt: timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   strconv.FormatInt(bookingID, 10),
			Value: event,
		}

		if err := p.client.SendMessages(c, p.cfg.Kafka.Topics.BookingStatus, message); err != nil {
			log.Error().Err(err).Int64("booking_id", bookingID).Str("status", string(status)).Msg("failed to publish booking status event")
		}
	}()
}
