package events

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"stayhub/config"
	"stayhub/infras/kafka"
	"stayhub/infras/mailer"
	bookingModel "stayhub/internal/domains/booking/model"
	bookingRepo "stayhub/internal/domains/booking/repository"
	userModel "stayhub/internal/domains/user/model"
	userRepo "stayhub/internal/domains/user/repository"
	"stayhub/shared"
	"stayhub/shared/constant"
)

var statusSubjects = map[bookingModel.Status]string{
	bookingModel.StatusWaitingForPayment:      "Your booking is waiting for payment",
	bookingModel.StatusWaitingForConfirmation: "We received your proof of payment",
	bookingModel.StatusConfirmed:              "Your booking is confirmed",
	bookingModel.StatusCanceled:               "Your booking was canceled",
}

// Consumer turns booking status events into customer notification mail.
type Consumer struct {
	cfg         *config.Config
	client      kafka.Client
	mailer      mailer.Mailer
	bookingRepo bookingRepo.Booking
	userRepo    userRepo.User
}

func NewConsumer(cfg *config.Config, client kafka.Client, mailer mailer.Mailer, bookingRepo bookingRepo.Booking, userRepo userRepo.User) *Consumer {
	return &Consumer{
		cfg:         cfg,
		client:      client,
		mailer:      mailer,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

// Run blocks consuming the booking status topic until ctx is done.
func (c *Consumer) Run(ctx context.Context) {
	c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.BookingStatus, func(message kafkaGo.Message) {
		decoded, err := kafka.DecodeKafkaMessage[BookingStatusEvent](message)
		if err != nil {
			log.Error().Err(err).Msg("failed to decode booking status event")

			return
		}

		event, ok := decoded.Value.(BookingStatusEvent)
		if !ok {
			log.Error().Msg("unexpected booking status event payload")

			return
		}

		if err := c.notify(ctx, event); err != nil {
			log.Error().Err(err).Int64("booking_id", event.BookingID).Msg("failed to notify customer")
		}
	})
}

func (c *Consumer) notify(ctx context.Context, event BookingStatusEvent) error {
	subject, ok := statusSubjects[bookingModel.Status(event.Status)]
	if !ok {
		return nil
	}

	booking, err := c.bookingRepo.GetWithStatus(ctx, event.BookingID)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return nil
	}

	customer, err := c.userRepo.Get(ctx, shared.FilterByID(booking.CustomerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return nil
	}

	body := fmt.Sprintf(
		"<p>Order #%d is now <b>%s</b>.</p><p>Stay: %s to %s.</p>",
		booking.ID, event.Status,
		booking.CheckIn.Format(constant.DateOnlyFormat),
		booking.CheckOut.Format(constant.DateOnlyFormat),
	)

	return c.mailer.Send(customer.Email, subject, body)
}
