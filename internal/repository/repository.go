package repository

import (
	"github.com/playmatch/sports-matchmaking-api/internal/models"
	"github.com/playmatch/sports-matchmaking-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user row. A unique-constraint violation on the
	// username or email surfaces as gorm.ErrDuplicatedKey.
	Create(user *models.User) error

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update persists modified profile fields
	Update(user *models.User) error

	// UpdatePasswordHash replaces the stored password hash
	UpdatePasswordHash(username, hash string) error

	// UpdateProfilePicture replaces the stored picture path
	UpdateProfilePicture(username, picture string) error
}

// EventFacets holds the distinct filter values derived from current events.
type EventFacets struct {
	SportTypes    []string
	NumPlayers    []int
	PlayingLevels []string
	Locations     []string
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create inserts a new event. A duplicate title surfaces as
	// gorm.ErrDuplicatedKey.
	Create(event *models.Event) error

	// FindByID finds an event by ID
	FindByID(id uint64) (*models.Event, error)

	// FindByTitle finds an event by its title
	FindByTitle(title string) (*models.Event, error)

	// List retrieves events with pagination, newest first
	List(params utils.PaginationParams) ([]models.Event, int64, error)

	// ListByOwner retrieves all events created by a user
	ListByOwner(username string) ([]models.Event, error)

	// Facets recomputes the distinct filter values from current data
	Facets() (*EventFacets, error)

	// Update persists modified event fields
	Update(event *models.Event) error

	// Delete removes an event permanently
	Delete(id uint64) error
}
