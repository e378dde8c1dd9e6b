package dto

import (
	"time"

	"github.com/playmatch/sports-matchmaking-api/internal/models"
)

// UserDTO is the public representation of a user. The password hash never
// leaves the service layer.
type UserDTO struct {
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	FullName          string    `json:"full_name"`
	Age               *int      `json:"age,omitempty"`
	PreferredLocation string    `json:"preferred_location,omitempty"`
	ProfilePicture    string    `json:"profile_picture"`
	CreatedAt         time.Time `json:"created_at"`
}

// ProfileDTO is a user together with the events they own.
type ProfileDTO struct {
	User   UserDTO    `json:"user"`
	Events []EventDTO `json:"events"`
}

// ToUserDTO converts a user model to its DTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		Username:          user.Username,
		Email:             user.Email,
		FullName:          user.FullName,
		Age:               user.Age,
		PreferredLocation: user.PreferredLocation,
		ProfilePicture:    user.ProfilePicture,
		CreatedAt:         user.CreatedAt,
	}
}

// ToProfileDTO converts a user and their owned events to a profile DTO
func ToProfileDTO(user models.User, events []models.Event) ProfileDTO {
	return ProfileDTO{
		User:   ToUserDTO(user),
		Events: ToEventDTOs(events),
	}
}
