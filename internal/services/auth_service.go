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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrEmailTaken           = errors.New("email already in use")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrInvalidPicture       = errors.New("profile picture must be a png, jpg, jpeg or gif file")
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo repository.UserRepository
	pictures *pictures.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, pictureStore *pictures.Store) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		pictures: pictureStore,
	}
}

// SignupInput represents the registration form.
type SignupInput struct {
	Username          string
	Email             string
	Password          string
	ConfirmPassword   string
	FullName          string
	Age               *int
	PreferredLocation string
	Picture           *multipart.FileHeader
}

func validateSignup(input SignupInput) ValidationErrors {
	var errs ValidationErrors

	username := strings.TrimSpace(input.Username)
	switch {
	case username == "":
		errs = append(errs, FieldError{"username", "username is required"})
	case len(username) < constants.MinUsernameLength || len(username) > constants.MaxUsernameLength:
		errs = append(errs, FieldError{"username", fmt.Sprintf("username must be %d-%d characters", constants.MinUsernameLength, constants.MaxUsernameLength)})
	case !usernamePattern.MatchString(username):
		errs = append(errs, FieldError{"username", "username must contain only letters and digits"})
	}

	email := strings.TrimSpace(input.Email)
	switch {
	case email == "":
		errs = append(errs, FieldError{"email", "email is required"})
	case !emailPattern.MatchString(email):
		errs = append(errs, FieldError{"email", "email is not a valid address"})
	}

	if len(input.Password) < constants.MinPasswordLength {
		errs = append(errs, FieldError{"password", fmt.Sprintf("password must be at least %d characters", constants.MinPasswordLength)})
	}
	if input.ConfirmPassword != input.Password {
		errs = append(errs, FieldError{"confirm_password", "passwords do not match"})
	}

	if strings.TrimSpace(input.FullName) == "" {
		errs = append(errs, FieldError{"fullname", "full name is required"})
	}
	if input.Age != nil && *input.Age <= 0 {
		errs = append(errs, FieldError{"age", "age must be a positive number"})
	}
	if input.Picture != nil && !pictures.Allowed(input.Picture.Filename) {
		errs = append(errs, FieldError{"profile_picture", ErrInvalidPicture.Error()})
	}

	return errs
}

// Signup validates the registration form, stores the optional picture,
// hashes the password and persists the user. The duplicate pre-checks give
// friendly errors; the unique constraints remain the authoritative signal
// and a constraint violation on insert maps back to the same errors.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	if errs := validateSignup(input); len(errs) > 0 {
		return nil, errs
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	picture := constants.DefaultProfilePicture
	if input.Picture != nil {
		stored, err := s.pictures.Save(username, input.Picture)
		if err != nil {
			if errors.Is(err, pictures.ErrUnsupportedExtension) {
				return nil, ErrInvalidPicture
			}
			return nil, fmt.Errorf("failed to store profile picture: %w", err)
		}
		picture = stored
	}

	user := &models.User{
		Username:          username,
		PasswordHash:      string(hashedPassword),
		Email:             email,
		FullName:          strings.TrimSpace(input.FullName),
		Age:               input.Age,
		PreferredLocation: strings.TrimSpace(input.PreferredLocation),
		ProfilePicture:    picture,
	}

	if err := s.userRepo.Create(user); err != nil {
		// The row never existed, so the freshly stored picture is orphaned.
		if picture != constants.DefaultProfilePicture {
			_ = s.pictures.Remove(picture)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.classifyDuplicate(username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// classifyDuplicate decides which unique constraint an insert raced on.
func (s *AuthService) classifyDuplicate(username string) error {
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user. Unknown
// usernames and wrong passwords produce the same error so the response
// never reveals which factor failed.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.rehashIfNeeded(user, input.Password)

	return user, nil
}

// rehashIfNeeded upgrades hashes produced with an outdated cost after a
// successful verify. Opportunistic: a failure leaves the old hash in place.
func (s *AuthService) rehashIfNeeded(user *models.User, password string) {
	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	if err != nil || cost >= bcrypt.DefaultCost {
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	if err := s.userRepo.UpdatePasswordHash(user.Username, string(newHash)); err == nil {
		user.PasswordHash = string(newHash)
	}
}

// GetUser retrieves a user by username.
func (s *AuthService) GetUser(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
