package entity

import (
	"time"

	"gorm.io/gorm"
)

// Message is one chat message attached to a car listing. Rows are
// append-only: nothing in the system updates or deletes them.
type Message struct {
	gorm.Model
	CarID uint `gorm:"index;not null" json:"carId"`
	Car   Car  `json:"-"` // hidden to avoid loops

	Sender string `gorm:"not null" json:"sender"`
	Text   string `gorm:"not null" json:"text"`
}

// InboxMessage is a message row joined with its listing's brand and
// model, as returned by the all-listings inbox query.
type InboxMessage struct {
	ID        uint      `json:"id"`
	CarID     uint      `json:"carId"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Model     string    `json:"model"`
	Brand     string    `json:"brand"`
}
