package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmatch/sports-matchmaking-api/internal/dto"
	"github.com/playmatch/sports-matchmaking-api/internal/services"
	"github.com/playmatch/sports-matchmaking-api/internal/showcase"
	"github.com/playmatch/sports-matchmaking-api/internal/utils"
)

// PageHandler serves the landing and informational pages.
type PageHandler struct {
	eventService *services.EventService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(eventService *services.EventService) *PageHandler {
	return &PageHandler{
		eventService: eventService,
	}
}

// Dashboard is the landing payload: a snapshot of recent events plus the
// seeded team and player showcase listings.
func (h *PageHandler) Dashboard(c *gin.Context) {
	params := utils.PaginationParams{Page: 1, Limit: 6, Offset: 0}
	result, err := h.eventService.Browse(params)
	if err != nil {
		// The landing page still renders without the snapshot.
		c.JSON(http.StatusOK, gin.H{
			"teams":   showcase.Teams(),
			"players": showcase.Players(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recent_events": dto.ToEventDTOs(result.Events),
		"teams":         showcase.Teams(),
		"players":       showcase.Players(),
	})
}

// HowItWorks is a static informational payload.
func (h *PageHandler) HowItWorks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"steps": []string{
			"Register an account with your sporting preferences",
			"Browse events near you or post your own pickup game",
			"Contact the organizer and show up to play",
		},
	})
}
