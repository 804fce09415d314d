package notification

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"artist-booking-backend/internal/model"
	"artist-booking-backend/internal/parse"
)

type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramSender posts booking alerts to the admin chat.
type TelegramSender struct {
	bot    botClient
	chatID int64
}

// NewTelegramSender authenticates the bot with the Telegram API. Every
// API request is bounded by timeout.
func NewTelegramSender(token string, chatID int64, timeout time.Duration) (*TelegramSender, error) {
	if token == "" || chatID == 0 {
		return nil, fmt.Errorf("telegram bot token and chat id are required")
	}
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &TelegramSender{bot: bot, chatID: chatID}, nil
}

func (s *TelegramSender) Channel() string { return "telegram" }

// Send returns as soon as ctx is done. The API call itself is abandoned to
// the client timeout, since tgbotapi takes no context.
func (s *TelegramSender) Send(ctx context.Context, n Notice) error {
	msg := tgbotapi.NewMessage(s.chatID, FormatTelegram(n))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	done := make(chan error, 1)
	go func() {
		_, err := s.bot.Send(msg)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("telegram send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("telegram send: %w", ctx.Err())
	}
}

// FormatTelegram renders a notice as a Telegram HTML message. Every
// user-supplied value is escaped.
func FormatTelegram(n Notice) string {
	e := html.EscapeString

	typeLabel := "Personal 👤"
	if n.BookingType == model.BookingTypeBusiness {
		typeLabel = "Business 💼"
	}
	email := "Not provided (Guest)"
	if n.ClientEmail != "" {
		email = e(n.ClientEmail)
	}
	phone := e(n.Cellphone)
	if n.HasWhatsapp {
		phone += " (WhatsApp)"
	}

	var b strings.Builder
	b.WriteString("<b>New Booking Request!</b> 🎵\n\n")
	fmt.Fprintf(&b, "<b>Artist:</b> %s\n", e(n.ArtistName))
	fmt.Fprintf(&b, "<b>Date:</b> %s\n", displayDate(n.Date))
	fmt.Fprintf(&b, "<b>Hours:</b> %d\n\n", n.Hours)
	b.WriteString("<b>Event Details:</b>\n")
	fmt.Fprintf(&b, "<b>Type:</b> %s\n", typeLabel)
	if n.Venue != "" {
		fmt.Fprintf(&b, "<b>Venue:</b> %s\n", e(n.Venue))
	}
	fmt.Fprintf(&b, "<b>Location:</b> %s, %s\n\n", e(n.City), e(n.State))
	b.WriteString("<b>Client Details:</b>\n")
	fmt.Fprintf(&b, "<b>Name:</b> %s\n", e(n.ClientName))
	fmt.Fprintf(&b, "<b>Email:</b> %s\n", email)
	fmt.Fprintf(&b, "<b>Phone:</b> %s\n\n", phone)
	fmt.Fprintf(&b, "<pre>Booking ID: %s</pre>", e(n.BookingID))
	return b.String()
}

func displayDate(date string) string {
	t, err := time.Parse(parse.DateLayout, date)
	if err != nil {
		return html.EscapeString(date)
	}
	return t.Format("Mon, 2 Jan 2006")
}
