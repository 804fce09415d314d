package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockPushClient is a mock implementation of the PushClient interface.
type mockPushClient struct {
	SendFunc func(ctx context.Context, payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

func (m *mockPushClient) Send(ctx context.Context, payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return m.SendFunc(ctx, payload, sub, options)
}

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func response(status int) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(bytes.NewBufferString(""))}
}

func subscriptionRows(endpoints ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"endpoint", "p256dh", "auth", "label", "created_at"})
	for _, e := range endpoints {
		rows.AddRow(e, "test_p256dh", "test_auth", "", time.Now())
	}
	return rows
}

func TestWebPushSender_Send(t *testing.T) {
	t.Run("sends to every subscription", func(t *testing.T) {
		gormDB, mock := newTestDB(t)
		s := NewWebPushSender(gormDB, &webpush.Options{}, time.Second, zap.NewNop())

		var endpoints []string
		s.client = &mockPushClient{
			SendFunc: func(ctx context.Context, payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				endpoints = append(endpoints, sub.Endpoint)
				var p pushPayload
				require.NoError(t, json.Unmarshal(payload, &p))
				assert.Equal(t, "b-7", p.BookingID)
				assert.Equal(t, "Electric Pulse on 2024-06-01 in Monterrey, NL", p.Body)
				return response(http.StatusCreated), nil
			},
		}

		mock.ExpectQuery(`SELECT \* FROM "push_subscriptions"`).
			WillReturnRows(subscriptionRows("https://example.com/a", "https://example.com/b"))

		err := s.Send(context.Background(), Notice{BookingID: "b-7", ArtistName: "Electric Pulse", Date: "2024-06-01", City: "Monterrey", State: "NL"})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, endpoints)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deletes expired subscription", func(t *testing.T) {
		gormDB, mock := newTestDB(t)
		s := NewWebPushSender(gormDB, &webpush.Options{}, time.Second, zap.NewNop())
		s.client = &mockPushClient{
			SendFunc: func(ctx context.Context, payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				return response(http.StatusGone), nil
			},
		}

		mock.ExpectQuery(`SELECT \* FROM "push_subscriptions"`).
			WillReturnRows(subscriptionRows("https://example.com/expired"))
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "push_subscriptions" WHERE "push_subscriptions"."endpoint" = \$1`).
			WithArgs("https://example.com/expired").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, s.Send(context.Background(), Notice{BookingID: "b-8"}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("one failing push does not stop the rest", func(t *testing.T) {
		gormDB, mock := newTestDB(t)
		s := NewWebPushSender(gormDB, &webpush.Options{}, time.Second, zap.NewNop())

		calls := 0
		s.client = &mockPushClient{
			SendFunc: func(ctx context.Context, payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				calls++
				if sub.Endpoint == "https://example.com/broken" {
					return nil, errors.New("connection reset")
				}
				return response(http.StatusCreated), nil
			},
		}

		mock.ExpectQuery(`SELECT \* FROM "push_subscriptions"`).
			WillReturnRows(subscriptionRows("https://example.com/broken", "https://example.com/ok"))

		err := s.Send(context.Background(), Notice{BookingID: "b-9"})
		assert.ErrorContains(t, err, "connection reset")
		assert.Equal(t, 2, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no subscriptions", func(t *testing.T) {
		gormDB, mock := newTestDB(t)
		s := NewWebPushSender(gormDB, &webpush.Options{}, time.Second, zap.NewNop())
		s.client = &mockPushClient{
			SendFunc: func(ctx context.Context, payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				t.Fatal("no push expected")
				return nil, nil
			},
		}

		mock.ExpectQuery(`SELECT \* FROM "push_subscriptions"`).WillReturnRows(subscriptionRows())

		assert.NoError(t, s.Send(context.Background(), Notice{}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bounds the default client", func(t *testing.T) {
		gormDB, _ := newTestDB(t)
		options := &webpush.Options{}
		NewWebPushSender(gormDB, options, 3*time.Second, zap.NewNop())

		client, ok := options.HTTPClient.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, 3*time.Second, client.Timeout)
	})
}
