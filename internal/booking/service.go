package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"artist-booking-backend/internal/availability"
	"artist-booking-backend/internal/metrics"
	"artist-booking-backend/internal/model"
	"artist-booking-backend/internal/notification"
	"artist-booking-backend/internal/store"
)

var (
	ErrArtistNotFound  = errors.New("artist not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrDateUnavailable = errors.New("date is not available for this artist")
)

// Dispatcher queues booking alerts without blocking.
type Dispatcher interface {
	Dispatch(n notification.Notice) bool
}

// Service handles booking submission and admin decisions.
type Service struct {
	store    store.Store
	avail    *availability.Service
	notifier Dispatcher
	validate *validator.Validate
	log      *zap.Logger
}

// NewService creates a new booking service. notifier may be nil.
func NewService(s store.Store, avail *availability.Service, notifier Dispatcher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    s,
		avail:    avail,
		notifier: notifier,
		validate: newValidator(),
		log:      log,
	}
}

// Submit validates and stores a new PENDING booking request, then queues
// the admin alert.
func (s *Service) Submit(ctx context.Context, req Request) (*model.Booking, error) {
	date, hours, err := req.normalise(s.validate)
	if err != nil {
		metrics.IncBookingRejected("invalid")
		return nil, err
	}

	artist, err := s.store.GetArtist(ctx, req.ArtistID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.IncBookingRejected("artist_not_found")
			return nil, ErrArtistNotFound
		}
		return nil, err
	}

	statuses, err := s.avail.Compute(ctx, artist.ID)
	if err != nil {
		return nil, err
	}
	if availability.Lookup(statuses, date) == availability.Unavailable {
		metrics.IncBookingRejected("date_unavailable")
		return nil, ErrDateUnavailable
	}

	bookingType := req.BookingType
	if bookingType == "" {
		bookingType = model.BookingTypePersonal
	}

	b := &model.Booking{
		ArtistID:    artist.ID,
		Date:        date,
		Hours:       hours,
		City:        req.City,
		State:       req.State,
		ClientName:  req.ClientName,
		ClientEmail: optional(req.ClientEmail),
		Cellphone:   req.Cellphone,
		HasWhatsapp: req.HasWhatsapp,
		BookingType: bookingType,
		Venue:       optional(req.Venue),
		Status:      model.BookingPending,
	}
	if err := s.store.CreateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	metrics.IncBookingCreated(string(b.Status))
	s.log.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("artist_id", artist.ID),
		zap.String("date", date),
	)

	if s.notifier != nil {
		s.notifier.Dispatch(notification.NewNotice(b, artist.Name))
	}
	return b, nil
}

// Decide moves a booking to the given status.
func (s *Service) Decide(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	if !status.Valid() {
		return nil, &ValidationError{Fields: []string{"status"}}
	}

	b, err := s.store.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	metrics.IncAdminDecision(string(status))
	s.log.Info("booking status changed", zap.String("booking_id", id), zap.String("status", string(status)))
	return b, nil
}

// Delete removes a booking permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteBooking(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	metrics.IncAdminDecision("DELETED")
	s.log.Info("booking deleted", zap.String("booking_id", id))
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
