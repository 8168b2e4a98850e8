package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/cema-health/records-api/config"
)

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPService returns a Service that sends through the configured SMTP
// relay.
func NewSMTPService(cfg config.SMTPConfig) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendAPIKey(_ context.Context, name, address, key string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", address)
	m.SetHeader("Subject", "Your CEMA Health System API Key")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\n"+
			"Welcome to CEMA Health System!\n\n"+
			"Your API key is:\n\n    %s\n\n"+
			"Please keep it secret, and use it as API-KEY in your requests.",
		name, key,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send api key mail: %w", err)
	}
	return nil
}
