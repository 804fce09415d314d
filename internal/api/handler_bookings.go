package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artist-booking-backend/internal/booking"
	"artist-booking-backend/internal/model"
	"artist-booking-backend/internal/store"
)

// CreateBooking handles POST /api/bookings.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req booking.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	b, err := h.bookings.Submit(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": b})
}

// ListBookings handles GET /api/admin/bookings.
func (h *Handler) ListBookings(c *gin.Context) {
	filter := store.BookingFilter{
		ArtistID: c.Query("artistId"),
		Status:   model.BookingStatus(c.Query("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	bookings, err := h.store.ListBookings(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type patchBookingRequest struct {
	Status model.BookingStatus `json:"status" binding:"required"`
}

// PatchBooking handles PATCH /api/admin/bookings/:id.
func (h *Handler) PatchBooking(c *gin.Context) {
	var req patchBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	b, err := h.bookings.Decide(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBooking handles DELETE /api/admin/bookings/:id.
func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.bookings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
