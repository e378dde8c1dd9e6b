package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/playmatch/sports-matchmaking-api/internal/constants"
	"github.com/playmatch/sports-matchmaking-api/internal/database"
	"github.com/playmatch/sports-matchmaking-api/internal/dto"
	"github.com/playmatch/sports-matchmaking-api/internal/middleware"
	"github.com/playmatch/sports-matchmaking-api/internal/models"
	"github.com/playmatch/sports-matchmaking-api/internal/pictures"
	"github.com/playmatch/sports-matchmaking-api/internal/repository"
	"github.com/playmatch/sports-matchmaking-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// EventHandlerTestSuite exercises the event routes through the full router,
// sessions included.
type EventHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *EventHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Event{})
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	pictureStore, err := pictures.NewStore(suite.T().TempDir())
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	eventRepo := repository.NewEventRepository(suite.db)
	authService := services.NewAuthService(userRepo, pictureStore)
	eventService := services.NewEventService(eventRepo)

	authHandler := NewAuthHandler(authService)
	eventHandler := NewEventHandler(eventService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/browse-events", eventHandler.BrowseEvents)
	r.GET("/browse-single-event/:event_id", eventHandler.BrowseSingleEvent)

	authed := r.Group("")
	authed.Use(middleware.RequireAuth())
	{
		authed.POST("/post-an-event", eventHandler.PostEvent)
		authed.GET("/edit_event/:event_id", middleware.RequireEventOwner(), eventHandler.EditEventForm)
		authed.POST("/edit_event/:event_id", middleware.RequireEventOwner(), eventHandler.EditEvent)
		authed.POST("/delete_event/:event_id", middleware.RequireEventOwner(), eventHandler.DeleteEvent)
	}

	suite.router = r
}

func (suite *EventHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// signupAndLogin registers a user through the API and returns the session
// cookies for subsequent requests.
func (suite *EventHandlerTestSuite) signupAndLogin(username string) []*http.Cookie {
	payload := map[string]any{
		"username":         username,
		"email":            username + "@example.com",
		"password":         "password123",
		"confirm_password": "password123",
		"fullname":         "Test User",
	}
	w := suite.do(http.MethodPost, "/register", payload, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)
	return w.Result().Cookies()
}

func (suite *EventHandlerTestSuite) do(method, url string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func eventPayload(title string) map[string]any {
	return map[string]any{
		"event_title":         title,
		"sport_type":          "Soccer",
		"playing_level":       "Intermediate",
		"gender_preference":   "Mixed",
		"num_players":         10,
		"event_date":          "2026-09-06",
		"start_time":          "10:00",
		"end_time":            "12:00",
		"location":            "City Park",
		"description":         "Bring your water bottle",
		"contact_information": "Email: organizer@example.com",
	}
}

func (suite *EventHandlerTestSuite) seedEvent(title, level, location string, numPlayers int, owner string) *models.Event {
	event := &models.Event{
		EventTitle:         title,
		SportType:          "Soccer",
		PlayingLevel:       level,
		GenderPreference:   "Mixed",
		NumPlayers:         numPlayers,
		EventDate:          "2026-09-06",
		StartTime:          "10:00",
		EndTime:            "12:00",
		Location:           location,
		Description:        "Test event",
		ContactInformation: "test@example.com",
		Username:           owner,
	}
	suite.Require().NoError(suite.db.Create(event).Error)
	return event
}

func (suite *EventHandlerTestSuite) TestPostEvent_Success() {
	cookies := suite.signupAndLogin("poster")

	w := suite.do(http.MethodPost, "/post-an-event", eventPayload("Morning Kickabout"), cookies)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response struct {
		Message string       `json:"message"`
		Event   dto.EventDTO `json:"event"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Event posted successfully", response.Message)
	assert.Equal(suite.T(), "Morning Kickabout", response.Event.EventTitle)
	assert.Equal(suite.T(), "poster", response.Event.Username)
}

func (suite *EventHandlerTestSuite) TestPostEvent_RequiresAuth() {
	w := suite.do(http.MethodPost, "/post-an-event", eventPayload("No Session"), nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *EventHandlerTestSuite) TestPostEvent_DuplicateTitle() {
	cookies := suite.signupAndLogin("poster")

	w := suite.do(http.MethodPost, "/post-an-event", eventPayload("Sunday League"), cookies)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/post-an-event", eventPayload("Sunday League"), cookies)
	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	// The duplicate must not create a second row.
	var count int64
	suite.db.Model(&models.Event{}).Where("event_title = ?", "Sunday League").Count(&count)
	assert.EqualValues(suite.T(), 1, count)
}

func (suite *EventHandlerTestSuite) TestPostEvent_NormalizesDateAndTime() {
	cookies := suite.signupAndLogin("poster")

	payload := eventPayload("Normalized Times")
	payload["event_date"] = "29/05/2026"
	payload["start_time"] = "3:00 PM"
	payload["end_time"] = "5:30 PM"

	w := suite.do(http.MethodPost, "/post-an-event", payload, cookies)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var response struct {
		Event dto.EventDTO `json:"event"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "2026-05-29", response.Event.EventDate)
	assert.Equal(suite.T(), "15:00", response.Event.StartTime)
	assert.Equal(suite.T(), "17:30", response.Event.EndTime)
}

func (suite *EventHandlerTestSuite) TestBrowseEvents_Facets() {
	suite.signupAndLogin("poster")
	suite.seedEvent("Advanced Run", "Advanced", "Westside Courts", 8, "poster")
	suite.seedEvent("Casual Game", "Beginner", "City Park", 10, "poster")
	suite.seedEvent("Another Casual Game", "Beginner", "City Park", 10, "poster")
	suite.seedEvent("Midweek Match", "Intermediate", "Downtown Gym", 6, "poster")

	w := suite.do(http.MethodGet, "/browse-events", nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response dto.BrowseEventsDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))

	assert.Len(suite.T(), response.Events, 4)
	// Facets are duplicate-free, levels ranked, locations lexical.
	assert.Equal(suite.T(), []string{"Beginner", "Intermediate", "Advanced"}, response.Facets.PlayingLevels)
	assert.Equal(suite.T(), []string{"City Park", "Downtown Gym", "Westside Courts"}, response.Facets.Locations)
	assert.Equal(suite.T(), []int{6, 8, 10}, response.Facets.NumPlayers)
	assert.Equal(suite.T(), []string{"Soccer"}, response.Facets.SportTypes)
}

func (suite *EventHandlerTestSuite) TestEditEvent_NotOwner() {
	suite.signupAndLogin("owner")
	event := suite.seedEvent("Owned Event", "Beginner", "City Park", 10, "owner")

	otherCookies := suite.signupAndLogin("intruder")
	w := suite.do(http.MethodPost, fmt.Sprintf("/edit_event/%d", event.ID), eventPayload("Hijacked"), otherCookies)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	var unchanged models.Event
	suite.Require().NoError(suite.db.First(&unchanged, event.ID).Error)
	assert.Equal(suite.T(), "Owned Event", unchanged.EventTitle)
}

func (suite *EventHandlerTestSuite) TestDeleteEvent_NotOwner() {
	suite.signupAndLogin("owner")
	event := suite.seedEvent("Owned Event", "Beginner", "City Park", 10, "owner")

	otherCookies := suite.signupAndLogin("intruder")
	w := suite.do(http.MethodPost, fmt.Sprintf("/delete_event/%d", event.ID), nil, otherCookies)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *EventHandlerTestSuite) TestDeleteEvent_ThenFetchMisses() {
	cookies := suite.signupAndLogin("owner")
	event := suite.seedEvent("Doomed Event", "Beginner", "City Park", 10, "owner")

	w := suite.do(http.MethodPost, fmt.Sprintf("/delete_event/%d", event.ID), nil, cookies)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, fmt.Sprintf("/browse-single-event/%d", event.ID), nil, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *EventHandlerTestSuite) TestEndToEndMatchmakingFlow() {
	// Register and log in.
	cookies := suite.signupAndLogin("alice")

	w := suite.do(http.MethodPost, "/login", map[string]any{
		"username": "alice",
		"password": "password123",
	}, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	cookies = w.Result().Cookies()

	// Post an event.
	w = suite.do(http.MethodPost, "/post-an-event", eventPayload("Sunday 5-a-side"), cookies)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created struct {
		Event dto.EventDTO `json:"event"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	// Browse shows it exactly once.
	w = suite.do(http.MethodGet, "/browse-events", nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var listing dto.BrowseEventsDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listing))
	occurrences := 0
	for _, e := range listing.Events {
		if e.EventTitle == "Sunday 5-a-side" {
			occurrences++
		}
	}
	assert.Equal(suite.T(), 1, occurrences)

	// Edit the location.
	edit := eventPayload("Sunday 5-a-side")
	edit["location"] = "Riverside Pitch"
	w = suite.do(http.MethodPost, fmt.Sprintf("/edit_event/%d", created.Event.ID), edit, cookies)
	suite.Require().Equal(http.StatusOK, w.Code)

	// The detail view shows the updated location.
	w = suite.do(http.MethodGet, fmt.Sprintf("/browse-single-event/%d", created.Event.ID), nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var detail dto.EventDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(suite.T(), "Riverside Pitch", detail.Location)

	// Delete it and confirm the listing no longer includes it.
	w = suite.do(http.MethodPost, fmt.Sprintf("/delete_event/%d", created.Event.ID), nil, cookies)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/browse-events", nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listing))
	for _, e := range listing.Events {
		assert.NotEqual(suite.T(), "Sunday 5-a-side", e.EventTitle)
	}
}

func TestEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}
