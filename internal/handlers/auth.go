package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/playmatch/sports-matchmaking-api/internal/constants"
	"github.com/playmatch/sports-matchmaking-api/internal/dto"
	apierrors "github.com/playmatch/sports-matchmaking-api/internal/errors"
	"github.com/playmatch/sports-matchmaking-api/internal/middleware"
	"github.com/playmatch/sports-matchmaking-api/internal/services"
)

// AuthHandler coordinates registration, login and logout.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterForm returns the field constraints the registration form needs.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"username_min_length": constants.MinUsernameLength,
		"username_max_length": constants.MaxUsernameLength,
		"password_min_length": constants.MinPasswordLength,
		"picture_extensions":  []string{"png", "jpg", "jpeg", "gif"},
	})
}

// Register handles the registration submission. The form may be multipart
// when it carries a profile picture.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username          string `form:"username" json:"username" binding:"required"`
		Email             string `form:"email" json:"email" binding:"required"`
		Password          string `form:"password" json:"password" binding:"required"`
		ConfirmPassword   string `form:"confirm_password" json:"confirm_password" binding:"required"`
		FullName          string `form:"fullname" json:"fullname" binding:"required"`
		Age               *int   `form:"age" json:"age"`
		PreferredLocation string `form:"preferred_location" json:"preferred_location"`
	}

	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.SignupInput{
		Username:          req.Username,
		Email:             req.Email,
		Password:          req.Password,
		ConfirmPassword:   req.ConfirmPassword,
		FullName:          req.FullName,
		Age:               req.Age,
		PreferredLocation: req.PreferredLocation,
	}
	if file, err := c.FormFile("profile_picture"); err == nil {
		input.Picture = file
	}

	user, err := h.authService.Signup(input)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	// Log the user in right after registration.
	if err := establishSession(c, user.Username, user.Email, false); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// LoginForm returns an empty prefill payload for the login form.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"username", "password", "remember"},
	})
}

// Login authenticates a user and initializes the session. The remember
// flag extends the session lifetime.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `form:"username" json:"username" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
		Remember bool   `form:"remember" json:"remember"`
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	if err := establishSession(c, user.Username, user.Email, req.Remember); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(username)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func establishSession(c *gin.Context, username, email string, remember bool) error {
	session := sessions.Default(c)
	session.Set(constants.ContextKeyUsername, username)
	session.Set(constants.SessionKeyEmail, email)

	maxAge := constants.SessionMaxAge
	if remember {
		maxAge = constants.SessionMaxAgeExtended
	}
	session.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})

	return session.Save()
}

func respondAuthError(c *gin.Context, err error) {
	if ve, ok := services.AsValidationErrors(err); ok {
		apierrors.BadRequestWithDetails(c, "Validation failed", ve)
		return
	}

	switch {
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidPicture):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "An error occurred, please try again")
	}
}
