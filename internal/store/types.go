package store

import (
	"errors"

	"artist-booking-backend/internal/model"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ArtistOrder assigns a catalog position to an artist.
type ArtistOrder struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

// BookingFilter narrows the admin booking listing. Zero values match everything.
type BookingFilter struct {
	ArtistID string
	Status   model.BookingStatus
}
