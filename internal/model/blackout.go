package model

import "time"

// Blackout is an artist-declared override for a single calendar date.
// Rows with IsAvailable=false block the date regardless of bookings.
type Blackout struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	ArtistID    string    `gorm:"size:36;not null;uniqueIndex:idx_blackout_artist_date" json:"artistId"`
	Date        string    `gorm:"size:10;not null;uniqueIndex:idx_blackout_artist_date" json:"date"` // YYYY-MM-DD
	IsAvailable bool      `gorm:"not null;default:false" json:"isAvailable"`
	Note        string    `gorm:"size:512" json:"note"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`

	// Associations
	Artist *Artist `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
