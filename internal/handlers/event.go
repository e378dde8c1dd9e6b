package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/playmatch/sports-matchmaking-api/internal/dto"
	apierrors "github.com/playmatch/sports-matchmaking-api/internal/errors"
	"github.com/playmatch/sports-matchmaking-api/internal/middleware"
	"github.com/playmatch/sports-matchmaking-api/internal/services"
	"github.com/playmatch/sports-matchmaking-api/internal/utils"
)

// Choice lists the authoring form presents. Values are suggestions for the
// UI; the server only requires the fields to be non-empty.
var (
	sportTypeChoices        = []string{"Basketball", "Soccer", "Rugby", "Tennis", "Cricket"}
	playingLevelChoices     = []string{"Beginner", "Intermediate", "Advanced"}
	genderPreferenceChoices = []string{"Male", "Female", "Mixed"}
)

// EventHandler coordinates event authoring and browsing.
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// EventRequest is the event authoring form, used for both create and edit.
type EventRequest struct {
	EventTitle         string `form:"event_title" json:"event_title" binding:"required"`
	SportType          string `form:"sport_type" json:"sport_type" binding:"required"`
	PlayingLevel       string `form:"playing_level" json:"playing_level" binding:"required"`
	GenderPreference   string `form:"gender_preference" json:"gender_preference" binding:"required"`
	NumPlayers         int    `form:"num_players" json:"num_players" binding:"required"`
	EventDate          string `form:"event_date" json:"event_date" binding:"required"`
	StartTime          string `form:"start_time" json:"start_time" binding:"required"`
	EndTime            string `form:"end_time" json:"end_time" binding:"required"`
	Location           string `form:"location" json:"location" binding:"required"`
	Description        string `form:"description" json:"description" binding:"required"`
	ContactInformation string `form:"contact_information" json:"contact_information" binding:"required"`
}

func (r EventRequest) toInput() services.EventInput {
	return services.EventInput{
		EventTitle:         r.EventTitle,
		SportType:          r.SportType,
		PlayingLevel:       r.PlayingLevel,
		GenderPreference:   r.GenderPreference,
		NumPlayers:         r.NumPlayers,
		EventDate:          r.EventDate,
		StartTime:          r.StartTime,
		EndTime:            r.EndTime,
		Location:           r.Location,
		Description:        r.Description,
		ContactInformation: r.ContactInformation,
	}
}

func formChoices() gin.H {
	return gin.H{
		"sport_types":        sportTypeChoices,
		"playing_levels":     playingLevelChoices,
		"gender_preferences": genderPreferenceChoices,
	}
}

// PostEventForm returns the choice lists the authoring form needs.
func (h *EventHandler) PostEventForm(c *gin.Context) {
	c.JSON(http.StatusOK, formChoices())
}

// PostEvent creates a new event owned by the authenticated user.
func (h *EventHandler) PostEvent(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req EventRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.eventService.Create(req.toInput(), username)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event posted successfully",
		"event":   dto.ToEventDTO(*event),
	})
}

// BrowseEvents returns a page of events with the filter facets.
func (h *EventHandler) BrowseEvents(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	result, err := h.eventService.Browse(params)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBrowseEventsDTO(result, params))
}

// BrowseSingleEvent returns one event by ID.
func (h *EventHandler) BrowseSingleEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid event ID")
		return
	}

	event, err := h.eventService.Get(eventID)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*event))
}

// EditEventForm returns the current event values plus the form choices.
// RequireEventOwner has already loaded the event and checked ownership.
func (h *EventHandler) EditEventForm(c *gin.Context) {
	event, ok := middleware.GetEvent(c)
	if !ok {
		apierrors.InternalError(c, "Event not found in context")
		return
	}

	payload := formChoices()
	payload["event"] = dto.ToEventDTO(event)
	c.JSON(http.StatusOK, payload)
}

// EditEvent updates an event owned by the authenticated user.
func (h *EventHandler) EditEvent(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	event, ok := middleware.GetEvent(c)
	if !ok {
		apierrors.InternalError(c, "Event not found in context")
		return
	}

	var req EventRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.eventService.Update(event.ID, req.toInput(), username)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*updated))
}

// DeleteEvent removes an event owned by the authenticated user.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	event, ok := middleware.GetEvent(c)
	if !ok {
		apierrors.InternalError(c, "Event not found in context")
		return
	}

	if err := h.eventService.Delete(event.ID, username); err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully",
	})
}

func respondEventError(c *gin.Context, err error) {
	if ve, ok := services.AsValidationErrors(err); ok {
		apierrors.BadRequestWithDetails(c, "Validation failed", ve)
		return
	}

	switch {
	case errors.Is(err, services.ErrEventTitleTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrEventNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotEventOwner):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "An error occurred, please try again")
	}
}
