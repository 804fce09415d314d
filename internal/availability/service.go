package availability

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Source is the read side of the persistence layer used by Service.
type Source interface {
	// BlackoutDates returns the dates the artist has explicitly blocked.
	BlackoutDates(ctx context.Context, artistID string) ([]string, error)
	// ActiveBookingMarks returns the PENDING and CONFIRMED bookings of the artist.
	ActiveBookingMarks(ctx context.Context, artistID string) ([]Mark, error)
}

// QueryError reports that availability could not be computed. No partial
// result accompanies it.
type QueryError struct {
	ArtistID string
	Err      error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("availability query for artist %s: %v", e.ArtistID, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// Service computes availability on demand. Nothing is cached.
type Service struct {
	src    Source
	logger *zap.Logger
}

// NewService creates a new availability service.
func NewService(src Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{src: src, logger: logger}
}

// Compute returns the demand status of every non-default date of the artist.
func (s *Service) Compute(ctx context.Context, artistID string) (map[string]Status, error) {
	var (
		blackouts []string
		marks     []Mark
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		blackouts, err = s.src.BlackoutDates(gctx, artistID)
		if err != nil {
			return fmt.Errorf("blackout dates: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		marks, err = s.src.ActiveBookingMarks(gctx, artistID)
		if err != nil {
			return fmt.Errorf("active bookings: %w", err)
		}
		return nil
	})

	// Callers log the failure.
	if err := g.Wait(); err != nil {
		return nil, &QueryError{ArtistID: artistID, Err: err}
	}

	statuses := Aggregate(blackouts, marks)
	s.logger.Debug("availability computed",
		zap.String("artist_id", artistID),
		zap.Int("blackouts", len(blackouts)),
		zap.Int("bookings", len(marks)),
		zap.Int("dates", len(statuses)),
	)
	return statuses, nil
}
