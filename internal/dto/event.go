package dto

import (
	"time"

	"github.com/playmatch/sports-matchmaking-api/internal/models"
	"github.com/playmatch/sports-matchmaking-api/internal/services"
	"github.com/playmatch/sports-matchmaking-api/internal/utils"
)

// EventDTO is the public representation of an event.
type EventDTO struct {
	ID                 uint64    `json:"id"`
	EventTitle         string    `json:"event_title"`
	SportType          string    `json:"sport_type"`
	PlayingLevel       string    `json:"playing_level"`
	GenderPreference   string    `json:"gender_preference"`
	NumPlayers         int       `json:"num_players"`
	EventDate          string    `json:"event_date"`
	StartTime          string    `json:"start_time"`
	EndTime            string    `json:"end_time"`
	Location           string    `json:"location"`
	Description        string    `json:"description"`
	ContactInformation string    `json:"contact_information"`
	Username           string    `json:"username"`
	CreatedAt          time.Time `json:"created_at"`
}

// EventFacetsDTO carries the filter values derived from current events.
type EventFacetsDTO struct {
	SportTypes    []string `json:"sport_types"`
	NumPlayers    []int    `json:"num_players"`
	PlayingLevels []string `json:"playing_levels"`
	Locations     []string `json:"locations"`
}

// BrowseEventsDTO is the event listing payload with facets and pagination.
type BrowseEventsDTO struct {
	Events     []EventDTO               `json:"events"`
	Facets     EventFacetsDTO           `json:"facets"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToEventDTO converts an event model to its DTO
func ToEventDTO(event models.Event) EventDTO {
	return EventDTO{
		ID:                 event.ID,
		EventTitle:         event.EventTitle,
		SportType:          event.SportType,
		PlayingLevel:       event.PlayingLevel,
		GenderPreference:   event.GenderPreference,
		NumPlayers:         event.NumPlayers,
		EventDate:          event.EventDate,
		StartTime:          event.StartTime,
		EndTime:            event.EndTime,
		Location:           event.Location,
		Description:        event.Description,
		ContactInformation: event.ContactInformation,
		Username:           event.Username,
		CreatedAt:          event.CreatedAt,
	}
}

// ToEventDTOs converts a slice of events
func ToEventDTOs(events []models.Event) []EventDTO {
	dtos := make([]EventDTO, len(events))
	for i, event := range events {
		dtos[i] = ToEventDTO(event)
	}
	return dtos
}

// ToBrowseEventsDTO converts a browse result to the listing payload
func ToBrowseEventsDTO(result *services.BrowseResult, params utils.PaginationParams) BrowseEventsDTO {
	return BrowseEventsDTO{
		Events: ToEventDTOs(result.Events),
		Facets: EventFacetsDTO{
			SportTypes:    result.SportTypes,
			NumPlayers:    result.NumPlayers,
			PlayingLevels: result.PlayingLevels,
			Locations:     result.Locations,
		},
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: result.Total,
		},
	}
}
