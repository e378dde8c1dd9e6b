package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/playmatch/sports-matchmaking-api/internal/database"
	apierrors "github.com/playmatch/sports-matchmaking-api/internal/errors"
	"github.com/playmatch/sports-matchmaking-api/internal/models"
)

// ContextKeyEvent is where RequireEventOwner stashes the loaded event.
const ContextKeyEvent = "event"

// RequireEventOwner loads the event named in the URL and verifies that the
// authenticated user is its owner. Any logged-in user must not be able to
// edit or delete someone else's event by guessing an id.
func RequireEventOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventIDStr := c.Param("event_id")
		eventID, err := strconv.ParseUint(eventIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid event ID")
			c.Abort()
			return
		}

		username, exists := GetUsername(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var event models.Event
		if err := database.GetDB().First(&event, eventID).Error; err != nil {
			apierrors.NotFound(c, "Event not found")
			c.Abort()
			return
		}

		if event.Username != username {
			apierrors.Forbidden(c, "Only the event owner can modify this event")
			c.Abort()
			return
		}

		c.Set(ContextKeyEvent, event)
		c.Next()
	}
}

// GetEvent retrieves the event loaded by RequireEventOwner
func GetEvent(c *gin.Context) (models.Event, bool) {
	value, exists := c.Get(ContextKeyEvent)
	if !exists {
		return models.Event{}, false
	}
	event, ok := value.(models.Event)
	return event, ok
}
