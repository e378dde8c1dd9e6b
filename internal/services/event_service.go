package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/playmatch/sports-matchmaking-api/internal/constants"
	"github.com/playmatch/sports-matchmaking-api/internal/models"
	"github.com/playmatch/sports-matchmaking-api/internal/repository"
	"github.com/playmatch/sports-matchmaking-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrEventTitleTaken = errors.New("an event with this title already exists")
	ErrEventNotFound   = errors.New("event not found")
	ErrNotEventOwner   = errors.New("only the event owner can modify this event")
)

// Submitted dates and times arrive in whichever of these layouts the client
// used; they are canonicalized to dateLayout and timeLayout before storage.
var (
	acceptedDateLayouts = []string{"2006-01-02", "2006/01/02", "02/01/2006"}
	acceptedTimeLayouts = []string{"15:04", "3:04 PM", "03:04 PM", "3:04PM"}
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// playingLevelRank orders the playing-level facet. Unknown levels sort
// after the known ones, alphabetically.
var playingLevelRank = map[string]int{
	constants.LevelBeginner:     0,
	constants.LevelIntermediate: 1,
	constants.LevelAdvanced:     2,
}

// EventService handles the event authoring workflow.
type EventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// EventInput represents the event authoring form.
type EventInput struct {
	EventTitle         string
	SportType          string
	PlayingLevel       string
	GenderPreference   string
	NumPlayers         int
	EventDate          string
	StartTime          string
	EndTime            string
	Location           string
	Description        string
	ContactInformation string
}

func normalizeDate(value string) (string, bool) {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return t.Format(dateLayout), true
		}
	}
	return "", false
}

func normalizeTime(value string) (string, bool) {
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return t.Format(timeLayout), true
		}
	}
	return "", false
}

func validateEvent(input EventInput) (EventInput, ValidationErrors) {
	var errs ValidationErrors

	required := []struct {
		field string
		value string
	}{
		{"event_title", input.EventTitle},
		{"sport_type", input.SportType},
		{"playing_level", input.PlayingLevel},
		{"gender_preference", input.GenderPreference},
		{"location", input.Location},
		{"description", input.Description},
		{"contact_information", input.ContactInformation},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, FieldError{r.field, r.field + " is required"})
		}
	}

	if input.NumPlayers <= 0 {
		errs = append(errs, FieldError{"num_players", "number of players must be positive"})
	}

	if date, ok := normalizeDate(input.EventDate); ok {
		input.EventDate = date
	} else {
		errs = append(errs, FieldError{"event_date", "event date must be a valid date (YYYY-MM-DD)"})
	}
	if start, ok := normalizeTime(input.StartTime); ok {
		input.StartTime = start
	} else {
		errs = append(errs, FieldError{"start_time", "start time must be a valid time of day"})
	}
	if end, ok := normalizeTime(input.EndTime); ok {
		input.EndTime = end
	} else {
		errs = append(errs, FieldError{"end_time", "end time must be a valid time of day"})
	}

	input.EventTitle = strings.TrimSpace(input.EventTitle)
	input.Location = strings.TrimSpace(input.Location)

	return input, errs
}

// Create validates and persists a new event owned by the given user. The
// title pre-check gives a friendly error; the unique constraint on the
// title column is the authoritative duplicate signal.
func (s *EventService) Create(input EventInput, owner string) (*models.Event, error) {
	input, errs := validateEvent(input)
	if len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.eventRepo.FindByTitle(input.EventTitle); err == nil {
		return nil, ErrEventTitleTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check event title: %w", err)
	}

	event := &models.Event{
		EventTitle:         input.EventTitle,
		SportType:          input.SportType,
		PlayingLevel:       input.PlayingLevel,
		GenderPreference:   input.GenderPreference,
		NumPlayers:         input.NumPlayers,
		EventDate:          input.EventDate,
		StartTime:          input.StartTime,
		EndTime:            input.EndTime,
		Location:           input.Location,
		Description:        strings.TrimSpace(input.Description),
		ContactInformation: strings.TrimSpace(input.ContactInformation),
		Username:           owner,
	}

	if err := s.eventRepo.Create(event); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEventTitleTaken
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// BrowseResult is an event listing page plus the filter facets derived
// from all current events.
type BrowseResult struct {
	Events        []models.Event
	Total         int64
	SportTypes    []string
	NumPlayers    []int
	PlayingLevels []string
	Locations     []string
}

// Browse returns a page of events together with freshly computed facets.
func (s *EventService) Browse(params utils.PaginationParams) (*BrowseResult, error) {
	events, total, err := s.eventRepo.List(params)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	facets, err := s.eventRepo.Facets()
	if err != nil {
		return nil, fmt.Errorf("failed to compute event facets: %w", err)
	}

	levels := append([]string(nil), facets.PlayingLevels...)
	sort.Slice(levels, func(i, j int) bool {
		ri, iKnown := playingLevelRank[levels[i]]
		rj, jKnown := playingLevelRank[levels[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return levels[i] < levels[j]
		}
	})

	return &BrowseResult{
		Events:        events,
		Total:         total,
		SportTypes:    facets.SportTypes,
		NumPlayers:    facets.NumPlayers,
		PlayingLevels: levels,
		Locations:     facets.Locations,
	}, nil
}

// Get retrieves an event by ID.
func (s *EventService) Get(id uint64) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return event, nil
}

// Update replaces every field except the ID and owner. Title uniqueness is
// re-checked when the title changes, and only the owner may update.
func (s *EventService) Update(id uint64, input EventInput, actor string) (*models.Event, error) {
	event, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if event.Username != actor {
		return nil, ErrNotEventOwner
	}

	input, errs := validateEvent(input)
	if len(errs) > 0 {
		return nil, errs
	}

	if input.EventTitle != event.EventTitle {
		if _, err := s.eventRepo.FindByTitle(input.EventTitle); err == nil {
			return nil, ErrEventTitleTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check event title: %w", err)
		}
	}

	event.EventTitle = input.EventTitle
	event.SportType = input.SportType
	event.PlayingLevel = input.PlayingLevel
	event.GenderPreference = input.GenderPreference
	event.NumPlayers = input.NumPlayers
	event.EventDate = input.EventDate
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	event.Location = input.Location
	event.Description = strings.TrimSpace(input.Description)
	event.ContactInformation = strings.TrimSpace(input.ContactInformation)

	if err := s.eventRepo.Update(event); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEventTitleTaken
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// Delete removes an event. Only the owner may delete.
func (s *EventService) Delete(id uint64, actor string) error {
	event, err := s.Get(id)
	if err != nil {
		return err
	}
	if event.Username != actor {
		return ErrNotEventOwner
	}

	if err := s.eventRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
