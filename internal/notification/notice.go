package notification

import (
	"context"

	"artist-booking-backend/internal/model"
)

// Notice describes a freshly submitted booking for the admin team.
type Notice struct {
	BookingID   string
	ArtistName  string
	Date        string
	Hours       int
	City        string
	State       string
	ClientName  string
	ClientEmail string
	Cellphone   string
	HasWhatsapp bool
	BookingType string
	Venue       string
}

// NewNotice copies the fields an alert needs out of a booking.
func NewNotice(b *model.Booking, artistName string) Notice {
	n := Notice{
		BookingID:   b.ID,
		ArtistName:  artistName,
		Date:        b.Date,
		Hours:       b.Hours,
		City:        b.City,
		State:       b.State,
		ClientName:  b.ClientName,
		Cellphone:   b.Cellphone,
		HasWhatsapp: b.HasWhatsapp,
		BookingType: b.BookingType,
	}
	if b.ClientEmail != nil {
		n.ClientEmail = *b.ClientEmail
	}
	if b.Venue != nil {
		n.Venue = *b.Venue
	}
	return n
}

// Sender delivers a notice over one channel.
type Sender interface {
	Channel() string
	Send(ctx context.Context, n Notice) error
}
