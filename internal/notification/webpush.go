package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"artist-booking-backend/internal/model"
)

// PushClient delivers a single web push message.
type PushClient interface {
	Send(ctx context.Context, payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

type vapidClient struct{}

func (vapidClient) Send(ctx context.Context, payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotificationWithContext(ctx, payload, sub, options)
}

// WebPushSender notifies every stored admin browser subscription.
type WebPushSender struct {
	db      *gorm.DB
	options *webpush.Options
	client  PushClient
	log     *zap.Logger
}

// NewWebPushSender creates a sender that uses the VAPID keys in options.
// When options carries no HTTP client, one bounded by timeout is used.
func NewWebPushSender(db *gorm.DB, options *webpush.Options, timeout time.Duration, log *zap.Logger) *WebPushSender {
	if log == nil {
		log = zap.NewNop()
	}
	if options.HTTPClient == nil {
		options.HTTPClient = &http.Client{Timeout: timeout}
	}
	return &WebPushSender{db: db, options: options, client: vapidClient{}, log: log}
}

type pushPayload struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	URL       string `json:"url"`
	BookingID string `json:"bookingId"`
}

func (s *WebPushSender) Channel() string { return "webpush" }

func (s *WebPushSender) Send(ctx context.Context, n Notice) error {
	var subscriptions []model.PushSubscription
	if err := s.db.WithContext(ctx).Find(&subscriptions).Error; err != nil {
		return fmt.Errorf("fetch push subscriptions: %w", err)
	}
	if len(subscriptions) == 0 {
		return nil
	}

	payload, err := json.Marshal(pushPayload{
		Title:     "New booking request",
		Body:      fmt.Sprintf("%s on %s in %s, %s", n.ArtistName, n.Date, n.City, n.State),
		URL:       "/admin/bookings",
		BookingID: n.BookingID,
	})
	if err != nil {
		return err
	}

	var errs []error
	for _, sub := range subscriptions {
		if err := s.sendOne(ctx, sub, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *WebPushSender) sendOne(ctx context.Context, sub model.PushSubscription, payload []byte) error {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := s.client.Send(ctx, payload, wpSub, s.options)
	if err != nil {
		return fmt.Errorf("push to %s: %w", sub.Endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound:
		s.log.Info("push subscription expired, deleting", zap.String("endpoint", sub.Endpoint))
		if err := s.db.WithContext(ctx).Delete(&sub).Error; err != nil {
			return fmt.Errorf("delete expired subscription %s: %w", sub.Endpoint, err)
		}
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("push to %s: unexpected status %d", sub.Endpoint, resp.StatusCode)
	}
	return nil
}
