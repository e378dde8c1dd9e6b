package models

import (
	"time"
)

type User struct {
	Username          string    `gorm:"type:varchar(25);primarykey" json:"username"`
	PasswordHash      string    `gorm:"type:varchar(255);not null" json:"-"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName          string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Age               *int      `json:"age"`
	PreferredLocation string    `gorm:"type:varchar(255)" json:"preferred_location"`
	ProfilePicture    string    `gorm:"type:varchar(255);not null" json:"profile_picture"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relations
	Events []Event `gorm:"foreignKey:Username;references:Username" json:"events,omitempty"`
}
