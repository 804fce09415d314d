package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artist represents a bookable performer in the public catalog.
type Artist struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Name            string    `gorm:"size:256;not null" json:"name"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	ImageURL        *string   `gorm:"size:1024" json:"imageUrl"`
	BookingImageURL *string   `gorm:"size:1024" json:"bookingImageUrl"`
	HoverVideoURL   *string   `gorm:"size:1024" json:"hoverVideoUrl"`
	Order           int       `gorm:"column:sort_order;not null;default:0;index" json:"order"`
	CreatedAt       time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"not null" json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the caller did not pick one.
func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
