package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmatch/sports-matchmaking-api/internal/dto"
	apierrors "github.com/playmatch/sports-matchmaking-api/internal/errors"
	"github.com/playmatch/sports-matchmaking-api/internal/middleware"
	"github.com/playmatch/sports-matchmaking-api/internal/services"
)

// ProfileHandler coordinates profile views, edits and picture management.
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile returns the authenticated user's profile and owned events.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, events, err := h.profileService.GetProfile(username)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*user, events))
}

// EditProfileForm returns the current profile values for prefilling.
func (h *ProfileHandler) EditProfileForm(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, _, err := h.profileService.GetProfile(username)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// EditProfile applies a partial update to the profile fields.
func (h *ProfileHandler) EditProfile(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type EditProfileRequest struct {
		FullName          *string `form:"fullname" json:"fullname"`
		Email             *string `form:"email" json:"email"`
		Age               *int    `form:"age" json:"age"`
		PreferredLocation *string `form:"preferred_location" json:"preferred_location"`
	}

	var req EditProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.profileService.UpdateProfile(username, services.ProfileUpdateInput{
		FullName:          req.FullName,
		Email:             req.Email,
		Age:               req.Age,
		PreferredLocation: req.PreferredLocation,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// EditProfilePictureForm returns the current picture path.
func (h *ProfileHandler) EditProfilePictureForm(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, _, err := h.profileService.GetProfile(username)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile_picture": user.ProfilePicture,
	})
}

// EditProfilePicture replaces the stored picture with the uploaded file.
func (h *ProfileHandler) EditProfilePicture(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	file, err := c.FormFile("profile_picture")
	if err != nil {
		apierrors.BadRequest(c, "A picture file is required")
		return
	}

	user, err := h.profileService.ReplacePicture(username, file)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// RemoveProfilePicture resets the picture to the default.
func (h *ProfileHandler) RemoveProfilePicture(c *gin.Context) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.profileService.RemovePicture(username)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
