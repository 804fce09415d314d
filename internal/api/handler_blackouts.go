package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"artist-booking-backend/internal/model"
	"artist-booking-backend/internal/parse"
	"artist-booking-backend/internal/store"
)

type putBlackoutRequest struct {
	Date        string `json:"date" binding:"required"`
	IsAvailable bool   `json:"isAvailable"`
	Note        string `json:"note"`
}

// ListBlackouts handles GET /api/admin/artists/:id/blackouts.
func (h *Handler) ListBlackouts(c *gin.Context) {
	blackouts, err := h.store.ListBlackouts(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blackouts)
}

// PutBlackout handles PUT /api/admin/artists/:id/blackouts.
func (h *Handler) PutBlackout(c *gin.Context) {
	var req putBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	date, err := parse.Date(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	artistID := c.Param("id")
	if _, err := h.store.GetArtist(ctx, artistID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		h.respondError(c, err)
		return
	}

	blackout := &model.Blackout{ArtistID: artistID, Date: date, IsAvailable: req.IsAvailable, Note: req.Note}
	if err := h.store.SetBlackout(ctx, blackout); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blackout)
}

// DeleteBlackout handles DELETE /api/admin/artists/:id/blackouts/:date.
func (h *Handler) DeleteBlackout(c *gin.Context) {
	date, err := parse.Date(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.DeleteBlackout(c.Request.Context(), c.Param("id"), date); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
