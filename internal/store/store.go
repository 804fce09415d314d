package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"artist-booking-backend/internal/availability"
	"artist-booking-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	availability.Source

	ListArtists(ctx context.Context) ([]model.Artist, error)
	GetArtist(ctx context.Context, id string) (*model.Artist, error)
	CreateArtist(ctx context.Context, artist *model.Artist) error
	UpdateArtist(ctx context.Context, artist *model.Artist) error
	ReorderArtists(ctx context.Context, items []ArtistOrder) error

	CreateBooking(ctx context.Context, booking *model.Booking) error
	ListBookings(ctx context.Context, filter BookingFilter) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error)
	DeleteBooking(ctx context.Context, id string) error

	SetBlackout(ctx context.Context, blackout *model.Blackout) error
	DeleteBlackout(ctx context.Context, artistID, date string) error
	ListBlackouts(ctx context.Context, artistID string) ([]model.Blackout, error)

	SaveSubscription(ctx context.Context, sub *model.PushSubscription) error
	DeleteSubscription(ctx context.Context, endpoint string) error
	ListSubscriptions(ctx context.Context) ([]model.PushSubscription, error)

	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// --- availability.Source ---

// BlackoutDates returns the dates explicitly marked unavailable for the artist.
func (s *gormStore) BlackoutDates(ctx context.Context, artistID string) ([]string, error) {
	var dates []string
	err := s.db.WithContext(ctx).
		Model(&model.Blackout{}).
		Where("artist_id = ? AND is_available = ?", artistID, false).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blackouts for artist %s: %w", artistID, err)
	}
	return dates, nil
}

// ActiveBookingMarks returns the date and status of every PENDING or CONFIRMED booking.
func (s *gormStore) ActiveBookingMarks(ctx context.Context, artistID string) ([]availability.Mark, error) {
	var rows []struct {
		Date   string
		Status model.BookingStatus
	}
	err := s.db.WithContext(ctx).
		Model(&model.Booking{}).
		Select("date, status").
		Where("artist_id = ? AND status IN ?", artistID, []model.BookingStatus{model.BookingPending, model.BookingConfirmed}).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active bookings for artist %s: %w", artistID, err)
	}

	marks := make([]availability.Mark, len(rows))
	for i, r := range rows {
		marks[i] = availability.Mark{Date: r.Date, Status: r.Status}
	}
	return marks, nil
}

// --- Artists ---

func (s *gormStore) ListArtists(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	if err := s.db.WithContext(ctx).Order("sort_order ASC").Order("created_at ASC").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

func (s *gormStore) GetArtist(ctx context.Context, id string) (*model.Artist, error) {
	var artist model.Artist
	if err := s.db.WithContext(ctx).First(&artist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch artist %s: %w", id, err)
	}
	return &artist, nil
}

func (s *gormStore) CreateArtist(ctx context.Context, artist *model.Artist) error {
	if err := s.db.WithContext(ctx).Create(artist).Error; err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}
	return nil
}

// UpdateArtist overwrites the editable fields of an existing artist.
func (s *gormStore) UpdateArtist(ctx context.Context, artist *model.Artist) error {
	res := s.db.WithContext(ctx).
		Model(&model.Artist{ID: artist.ID}).
		Select("name", "description", "image_url", "booking_image_url", "hover_video_url", "updated_at").
		Updates(artist)
	if res.Error != nil {
		return fmt.Errorf("failed to update artist %s: %w", artist.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReorderArtists applies all positions in one transaction; an unknown ID aborts it.
func (s *gormStore) ReorderArtists(ctx context.Context, items []ArtistOrder) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			res := tx.Model(&model.Artist{}).Where("id = ?", item.ID).Update("sort_order", item.Order)
			if res.Error != nil {
				return fmt.Errorf("failed to update order for artist %s: %w", item.ID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("artist %s: %w", item.ID, ErrNotFound)
			}
		}
		return nil
	})
}

// --- Bookings ---

func (s *gormStore) CreateBooking(ctx context.Context, booking *model.Booking) error {
	if err := s.db.WithContext(ctx).Omit("Artist").Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// ListBookings returns bookings newest first with their artist preloaded.
func (s *gormStore) ListBookings(ctx context.Context, filter BookingFilter) ([]model.Booking, error) {
	q := s.db.WithContext(ctx).Preload("Artist")
	if filter.ArtistID != "" {
		q = q.Where("artist_id = ?", filter.ArtistID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var bookings []model.Booking
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *gormStore) UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	var booking model.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&booking).Update("status", status).Error; err != nil {
			return err
		}
		booking.Status = status
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status of booking %s: %w", id, err)
	}
	return &booking, nil
}

func (s *gormStore) DeleteBooking(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Booking{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Blackouts ---

// SetBlackout creates or replaces the override for (artist, date).
func (s *gormStore) SetBlackout(ctx context.Context, blackout *model.Blackout) error {
	err := s.db.WithContext(ctx).Omit("Artist").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "artist_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_available", "note", "updated_at"}),
	}).Create(blackout).Error
	if err != nil {
		return fmt.Errorf("failed to save blackout %s/%s: %w", blackout.ArtistID, blackout.Date, err)
	}
	return nil
}

func (s *gormStore) DeleteBlackout(ctx context.Context, artistID, date string) error {
	res := s.db.WithContext(ctx).Where("artist_id = ? AND date = ?", artistID, date).Delete(&model.Blackout{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete blackout %s/%s: %w", artistID, date, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ListBlackouts(ctx context.Context, artistID string) ([]model.Blackout, error) {
	var blackouts []model.Blackout
	if err := s.db.WithContext(ctx).Where("artist_id = ?", artistID).Order("date ASC").Find(&blackouts).Error; err != nil {
		return nil, fmt.Errorf("failed to list blackouts for artist %s: %w", artistID, err)
	}
	return blackouts, nil
}

// --- Push subscriptions ---

func (s *gormStore) SaveSubscription(ctx context.Context, sub *model.PushSubscription) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "label"}),
	}).Create(sub).Error
	if err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

func (s *gormStore) DeleteSubscription(ctx context.Context, endpoint string) error {
	if err := s.db.WithContext(ctx).Delete(&model.PushSubscription{Endpoint: endpoint}).Error; err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

func (s *gormStore) ListSubscriptions(ctx context.Context) ([]model.PushSubscription, error) {
	var subs []model.PushSubscription
	if err := s.db.WithContext(ctx).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}
