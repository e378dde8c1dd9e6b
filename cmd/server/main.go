package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/playmatch/sports-matchmaking-api/internal/config"
	"github.com/playmatch/sports-matchmaking-api/internal/constants"
	"github.com/playmatch/sports-matchmaking-api/internal/database"
	"github.com/playmatch/sports-matchmaking-api/internal/handlers"
	"github.com/playmatch/sports-matchmaking-api/internal/middleware"
	"github.com/playmatch/sports-matchmaking-api/internal/pictures"
	"github.com/playmatch/sports-matchmaking-api/internal/repository"
	"github.com/playmatch/sports-matchmaking-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Upload directory for profile pictures
	pictureStore, err := pictures.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Uploaded pictures are served by relative path from the user record.
	r.Static("/profile-images", pictureStore.Dir())

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	eventRepo := repository.NewEventRepository(database.GetDB())
	authService := services.NewAuthService(userRepo, pictureStore)
	eventService := services.NewEventService(eventRepo)
	profileService := services.NewProfileService(userRepo, eventRepo, pictureStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	eventHandler := handlers.NewEventHandler(eventService)
	profileHandler := handlers.NewProfileHandler(profileService)
	pageHandler := handlers.NewPageHandler(eventService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Sports Matchmaking API is running",
		})
	})

	// Public pages
	r.GET("/", pageHandler.Dashboard)
	r.GET("/dashboard", pageHandler.Dashboard)
	r.GET("/how-it-works", pageHandler.HowItWorks)

	// Auth routes (public)
	r.GET("/register", authHandler.RegisterForm)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)

	// Event browsing (public)
	r.GET("/browse-events", eventHandler.BrowseEvents)
	r.GET("/browse-single-event/:event_id", eventHandler.BrowseSingleEvent)

	// Event authoring (protected)
	authed := r.Group("")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/post-an-event", eventHandler.PostEventForm)
		authed.POST("/post-an-event", eventHandler.PostEvent)
		authed.GET("/edit_event/:event_id", middleware.RequireEventOwner(), eventHandler.EditEventForm)
		authed.POST("/edit_event/:event_id", middleware.RequireEventOwner(), eventHandler.EditEvent)
		authed.POST("/delete_event/:event_id", middleware.RequireEventOwner(), eventHandler.DeleteEvent)

		authed.GET("/profile", profileHandler.GetProfile)
		authed.GET("/edit_profile", profileHandler.EditProfileForm)
		authed.POST("/edit_profile", profileHandler.EditProfile)
		authed.GET("/edit_profile_picture", profileHandler.EditProfilePictureForm)
		authed.POST("/edit_profile_picture", profileHandler.EditProfilePicture)
		authed.POST("/remove_profile_picture", profileHandler.RemoveProfilePicture)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
