package repository

import (
	"github.com/playmatch/sports-matchmaking-api/internal/database"
	"github.com/playmatch/sports-matchmaking-api/internal/models"
	"github.com/playmatch/sports-matchmaking-api/internal/utils"
	"gorm.io/gorm"
)

// GormEventRepository is a GORM implementation of EventRepository
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &GormEventRepository{db: db}
}

// Create inserts a new event
func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// FindByID finds an event by ID
func (r *GormEventRepository) FindByID(id uint64) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByTitle finds an event by its title
func (r *GormEventRepository) FindByTitle(title string) (*models.Event, error) {
	var event models.Event
	if err := r.db.Where("event_title = ?", title).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List retrieves events with pagination, newest first
func (r *GormEventRepository) List(params utils.PaginationParams) ([]models.Event, int64, error) {
	var total int64
	if err := r.db.Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := r.db.
		Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// ListByOwner retrieves all events created by a user
func (r *GormEventRepository) ListByOwner(username string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Facets recomputes the distinct filter values from current data. Sport
// types, player counts and locations come back sorted from the store;
// playing levels are returned unordered and ranked by the service.
func (r *GormEventRepository) Facets() (*EventFacets, error) {
	facets := &EventFacets{}

	err := r.db.Model(&models.Event{}).
		Distinct().
		Order("sport_type").
		Pluck("sport_type", &facets.SportTypes).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Event{}).
		Distinct().
		Order("num_players").
		Pluck("num_players", &facets.NumPlayers).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Event{}).
		Distinct().
		Pluck("playing_level", &facets.PlayingLevels).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Event{}).
		Distinct().
		Order("location").
		Pluck("location", &facets.Locations).Error
	if err != nil {
		return nil, err
	}

	return facets, nil
}

// Update persists modified event fields
func (r *GormEventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes an event permanently
func (r *GormEventRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Event{}, id).Error
}
