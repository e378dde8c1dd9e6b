package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/playmatch/sports-matchmaking-api/internal/constants"
	"github.com/playmatch/sports-matchmaking-api/internal/models"
	"github.com/playmatch/sports-matchmaking-api/internal/pictures"
	"github.com/playmatch/sports-matchmaking-api/internal/repository"
	"gorm.io/gorm"
)

// ProfileService handles profile edits and picture management.
type ProfileService struct {
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
	pictures  *pictures.Store
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repository.UserRepository, eventRepo repository.EventRepository, pictureStore *pictures.Store) *ProfileService {
	return &ProfileService{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		pictures:  pictureStore,
	}
}

// GetProfile returns the user together with the events they own.
func (s *ProfileService) GetProfile(username string) (*models.User, []models.Event, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	events, err := s.eventRepo.ListByOwner(username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list owned events: %w", err)
	}

	return user, events, nil
}

// ProfileUpdateInput carries a partial profile edit. Nil fields are left
// unchanged; the username itself is immutable.
type ProfileUpdateInput struct {
	FullName          *string
	Email             *string
	Age               *int
	PreferredLocation *string
}

func validateProfileUpdate(input ProfileUpdateInput) ValidationErrors {
	var errs ValidationErrors

	if input.FullName != nil && strings.TrimSpace(*input.FullName) == "" {
		errs = append(errs, FieldError{"fullname", "full name cannot be empty"})
	}
	if input.Email != nil && !emailPattern.MatchString(strings.TrimSpace(*input.Email)) {
		errs = append(errs, FieldError{"email", "email is not a valid address"})
	}
	if input.Age != nil && *input.Age <= 0 {
		errs = append(errs, FieldError{"age", "age must be a positive number"})
	}

	return errs
}

// UpdateProfile applies a partial update to the profile fields. Changing
// the email re-checks uniqueness with the constraint as backstop.
func (s *ProfileService) UpdateProfile(username string, input ProfileUpdateInput) (*models.User, error) {
	if errs := validateProfileUpdate(input); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email != user.Email {
			if other, err := s.userRepo.FindByEmail(email); err == nil && other.Username != username {
				return nil, ErrEmailTaken
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
		}
		user.Email = email
	}
	if input.FullName != nil {
		user.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Age != nil {
		user.Age = input.Age
	}
	if input.PreferredLocation != nil {
		user.PreferredLocation = strings.TrimSpace(*input.PreferredLocation)
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// ReplacePicture stores the new picture file, points the user record at
// it, and only then deletes the previous file. A crash between the steps
// can leave an orphaned file but never a record referencing a missing one.
func (s *ProfileService) ReplacePicture(username string, file *multipart.FileHeader) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	stored, err := s.pictures.Save(username, file)
	if err != nil {
		if errors.Is(err, pictures.ErrUnsupportedExtension) {
			return nil, ErrInvalidPicture
		}
		return nil, fmt.Errorf("failed to store profile picture: %w", err)
	}

	old := user.ProfilePicture
	if err := s.userRepo.UpdateProfilePicture(username, stored); err != nil {
		_ = s.pictures.Remove(stored)
		return nil, fmt.Errorf("failed to update profile picture: %w", err)
	}
	user.ProfilePicture = stored

	// Remove is a no-op for the default sentinel.
	_ = s.pictures.Remove(old)

	return user, nil
}

// RemovePicture resets the user to the default sentinel and deletes the
// previously stored file if it was not the default.
func (s *ProfileService) RemovePicture(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	old := user.ProfilePicture
	if err := s.userRepo.UpdateProfilePicture(username, constants.DefaultProfilePicture); err != nil {
		return nil, fmt.Errorf("failed to reset profile picture: %w", err)
	}
	user.ProfilePicture = constants.DefaultProfilePicture

	_ = s.pictures.Remove(old)

	return user, nil
}
