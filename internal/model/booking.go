package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus is the lifecycle state of a booking request.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingRejected  BookingStatus = "REJECTED"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingRejected:
		return true
	}
	return false
}

// Active reports whether a booking in this state holds a date on the calendar.
func (s BookingStatus) Active() bool {
	return s == BookingPending || s == BookingConfirmed
}

// Booking types offered on the request form.
const (
	BookingTypePersonal = "personal"
	BookingTypeBusiness = "business"
)

// Booking is a booking request submitted by a client for one artist on one date.
type Booking struct {
	ID          string        `gorm:"primaryKey;size:36" json:"id"`
	ArtistID    string        `gorm:"size:36;not null;index:idx_booking_artist_date" json:"artistId"`
	Date        string        `gorm:"size:10;not null;index:idx_booking_artist_date" json:"date"` // YYYY-MM-DD
	Hours       int           `gorm:"not null" json:"hours"`
	City        string        `gorm:"size:128;not null" json:"city"`
	State       string        `gorm:"size:128;not null" json:"state"`
	ClientName  string        `gorm:"size:256;not null" json:"clientName"`
	ClientEmail *string       `gorm:"size:256" json:"clientEmail"`
	Cellphone   string        `gorm:"size:64;not null" json:"cellphone"`
	HasWhatsapp bool          `gorm:"not null;default:false" json:"hasWhatsapp"`
	BookingType string        `gorm:"size:32;not null;default:personal" json:"bookingType"`
	Venue       *string       `gorm:"size:512" json:"venue"`
	Status      BookingStatus `gorm:"size:16;not null;default:PENDING;index" json:"status"`
	CreatedAt   time.Time     `gorm:"not null;index" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"not null" json:"updatedAt"`

	// Associations
	Artist *Artist `gorm:"constraint:OnDelete:CASCADE" json:"artist,omitempty"`
}

// BeforeCreate assigns a UUID when the caller did not pick one.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
