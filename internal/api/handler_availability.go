package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artist-booking-backend/internal/availability"
	"artist-booking-backend/internal/booking"
	"artist-booking-backend/internal/metrics"
	"artist-booking-backend/internal/store"
)

// GetAvailability handles GET /api/artists/:id/availability. Dates absent
// from the response are AVAILABLE.
func (h *Handler) GetAvailability(c *gin.Context) {
	statuses, err := h.computeAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": availability.Entries(statuses)})
}

// GetCalendar handles GET /api/artists/:id/calendar?month=YYYY-MM. When
// availability cannot be read the month is still rendered, with every date
// AVAILABLE, and the response is marked degraded.
func (h *Handler) GetCalendar(c *gin.Context) {
	today := h.today()
	year, month := today.Year(), today.Month()
	if raw := c.Query("month"); raw != "" {
		var err error
		year, month, err = availability.ParseMonth(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	degraded := false
	statuses, err := h.computeAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		var qerr *availability.QueryError
		if !errors.As(err, &qerr) {
			h.respondError(c, err)
			return
		}
		h.log.Error("availability query failed, rendering empty calendar",
			zap.String("artist_id", qerr.ArtistID), zap.Error(qerr.Err))
		statuses, degraded = nil, true
	}

	body := gin.H{
		"month": fmt.Sprintf("%04d-%02d", year, int(month)),
		"days":  availability.Month(year, month, statuses, today.Format(availability.DateLayout)),
	}
	if degraded {
		body["degraded"] = true
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) computeAvailability(ctx context.Context, artistID string) (map[string]availability.Status, error) {
	if _, err := h.store.GetArtist(ctx, artistID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, booking.ErrArtistNotFound
		}
		metrics.IncAvailabilityQuery("error")
		return nil, err
	}

	statuses, err := h.avail.Compute(ctx, artistID)
	if err != nil {
		metrics.IncAvailabilityQuery("error")
		return nil, err
	}
	metrics.IncAvailabilityQuery("ok")
	return statuses, nil
}
