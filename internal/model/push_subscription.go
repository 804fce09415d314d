package model

import "time"

// PushSubscription holds the browser push subscription of an admin who wants
// to be alerted about new booking requests.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey" json:"endpoint"`
	P256DH    string    `gorm:"column:p256dh;not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	Label     string    `gorm:"size:128" json:"label"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
