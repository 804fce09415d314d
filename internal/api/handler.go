package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artist-booking-backend/internal/availability"
	"artist-booking-backend/internal/booking"
	"artist-booking-backend/internal/mw"
	"artist-booking-backend/internal/storage"
	"artist-booking-backend/internal/store"
)

// Deps bundles everything the handlers need.
type Deps struct {
	Store        store.Store
	Availability *availability.Service
	Bookings     *booking.Service
	Uploader     storage.Uploader // nil disables media uploads
	Cache        *mw.ResponseCache
	WebPush      *webpush.Options
	Logger       *zap.Logger
	Location     *time.Location
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	avail    *availability.Service
	bookings *booking.Service
	uploader storage.Uploader
	cache    *mw.ResponseCache
	webpush  *webpush.Options
	log      *zap.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler(d Deps) *Handler {
	h := &Handler{
		store:    d.Store,
		avail:    d.Availability,
		bookings: d.Bookings,
		uploader: d.Uploader,
		cache:    d.Cache,
		webpush:  d.WebPush,
		log:      d.Logger,
		loc:      d.Location,
		now:      time.Now,
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	if h.loc == nil {
		h.loc = time.UTC
	}
	return h
}

// today is the current calendar date in the configured time zone.
func (h *Handler) today() time.Time {
	return h.now().In(h.loc)
}

// invalidateCatalog drops cached catalog pages after an artist mutation.
func (h *Handler) invalidateCatalog() {
	if h.cache != nil {
		h.cache.Flush()
	}
}

// respondError maps domain errors to HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	var qerr *availability.QueryError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "fields": verr.Fields})
	case errors.Is(err, booking.ErrArtistNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, booking.ErrDateUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Date is not available"})
	case errors.As(err, &qerr):
		h.log.Error("availability query failed", zap.String("artist_id", qerr.ArtistID), zap.Error(qerr.Err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	default:
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}
