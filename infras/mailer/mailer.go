package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"stayhub/config"
)

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type mailerImpl struct {
	cfg    *config.Config
	dialer *gomail.Dialer
}

func New(cfg *config.Config) Mailer {
	dialer := gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password)

	return &mailerImpl{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (m *mailerImpl) Send(to, subject, htmlBody string) error {
	if !m.cfg.Mail.Enable {
		log.Debug().Str("to", to).Str("subject", subject).Msg("mail disabled, skipping send")

		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Mail.Sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
