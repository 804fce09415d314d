package notification

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"artist-booking-backend/config"
)

type emailClient interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailSender mails booking alerts to the admin address through Resend.
type EmailSender struct {
	emails emailClient
	from   string
	to     string
}

// NewEmailSender creates a sender from the Resend settings. Requests made
// by the client are bounded by timeout.
func NewEmailSender(cfg config.EmailConfig, timeout time.Duration) (*EmailSender, error) {
	if cfg.APIKey == "" || cfg.AdminEmail == "" || cfg.From == "" {
		return nil, fmt.Errorf("resend api key, sender and admin address are required")
	}
	client := resend.NewCustomClient(&http.Client{Timeout: timeout}, cfg.APIKey)
	return &EmailSender{emails: client.Emails, from: cfg.From, to: cfg.AdminEmail}, nil
}

func (s *EmailSender) Channel() string { return "email" }

func (s *EmailSender) Send(ctx context.Context, n Notice) error {
	sent, err := s.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		Subject: fmt.Sprintf("New Booking Request: %s", n.ArtistName),
		Html:    emailBody(n),
	})
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	if sent == nil || sent.Id == "" {
		return fmt.Errorf("resend send: empty response")
	}
	return nil
}

func emailBody(n Notice) string {
	return strings.ReplaceAll(FormatTelegram(n), "\n", "<br>\n")
}
