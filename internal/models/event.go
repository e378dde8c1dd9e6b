package models

import (
	"time"
)

// Event is a postable pickup-game listing. EventDate is stored as an ISO
// date (2006-01-02) and StartTime/EndTime as 24-hour clock times (15:04);
// the event service normalizes submitted values before they reach the store.
type Event struct {
	ID                 uint64    `gorm:"primarykey" json:"id"`
	EventTitle         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"event_title"`
	SportType          string    `gorm:"type:varchar(50);not null" json:"sport_type"`
	PlayingLevel       string    `gorm:"type:varchar(50);not null" json:"playing_level"`
	GenderPreference   string    `gorm:"type:varchar(50);not null" json:"gender_preference"`
	NumPlayers         int       `gorm:"not null" json:"num_players"`
	EventDate          string    `gorm:"type:varchar(10);not null" json:"event_date"`
	StartTime          string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime            string    `gorm:"type:varchar(5);not null" json:"end_time"`
	Location           string    `gorm:"type:varchar(255);not null" json:"location"`
	Description        string    `gorm:"type:text;not null" json:"description"`
	ContactInformation string    `gorm:"type:varchar(255);not null" json:"contact_information"`
	Username           string    `gorm:"type:varchar(25);not null;index" json:"username"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relations
	Owner User `gorm:"foreignKey:Username;references:Username" json:"owner,omitempty"`
}
