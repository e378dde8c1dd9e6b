package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
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
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type profileTestEnv struct {
	db        *gorm.DB
	router    *gin.Engine
	uploadDir string
}

func setupProfileTestEnv(t *testing.T) profileTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Event{})
	require.NoError(t, err)

	database.SetDB(db)

	uploadDir := t.TempDir()
	pictureStore, err := pictures.NewStore(uploadDir)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	authService := services.NewAuthService(userRepo, pictureStore)
	profileService := services.NewProfileService(userRepo, eventRepo, pictureStore)

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.POST("/register", authHandler.Register)

	authed := r.Group("")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/profile", profileHandler.GetProfile)
		authed.POST("/edit_profile", profileHandler.EditProfile)
		authed.POST("/edit_profile_picture", profileHandler.EditProfilePicture)
		authed.POST("/remove_profile_picture", profileHandler.RemoveProfilePicture)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return profileTestEnv{
		db:        db,
		router:    r,
		uploadDir: uploadDir,
	}
}

func (env profileTestEnv) register(t *testing.T, username string) []*http.Cookie {
	t.Helper()

	w := postJSON(t, env.router, "/register", registerPayload(username, username+"@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	return w.Result().Cookies()
}

func (env profileTestEnv) uploadPicture(t *testing.T, filename string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("profile_picture", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/edit_profile_picture", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestProfileHandler_GetProfile(t *testing.T) {
	env := setupProfileTestEnv(t)
	cookies := env.register(t, "profileuser")

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var profile dto.ProfileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	require.Equal(t, "profileuser", profile.User.Username)
	require.Empty(t, profile.Events)
}

func TestProfileHandler_EditProfile_PartialUpdate(t *testing.T) {
	env := setupProfileTestEnv(t)
	cookies := env.register(t, "editme")

	body, err := json.Marshal(map[string]any{
		"preferred_location": "Northbridge",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/edit_profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Northbridge", updated.PreferredLocation)
	// Untouched fields keep their values.
	require.Equal(t, "Test User", updated.FullName)
	require.Equal(t, "editme@example.com", updated.Email)
}

func TestProfileHandler_EditProfile_DuplicateEmail(t *testing.T) {
	env := setupProfileTestEnv(t)
	env.register(t, "first")
	cookies := env.register(t, "second")

	body, err := json.Marshal(map[string]any{
		"email": "first@example.com",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/edit_profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestProfileHandler_ReplaceAndRemovePicture(t *testing.T) {
	env := setupProfileTestEnv(t)
	cookies := env.register(t, "picuser")

	// Upload a first picture.
	w := env.uploadPicture(t, "avatar.png", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var afterFirst dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &afterFirst))
	require.NotEqual(t, constants.DefaultProfilePicture, afterFirst.ProfilePicture)
	require.FileExists(t, filepath.Join(env.uploadDir, afterFirst.ProfilePicture))

	// Replacing stores a new file and deletes the old one.
	w = env.uploadPicture(t, "avatar.jpg", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var afterSecond dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &afterSecond))
	require.NotEqual(t, afterFirst.ProfilePicture, afterSecond.ProfilePicture)
	require.FileExists(t, filepath.Join(env.uploadDir, afterSecond.ProfilePicture))
	require.NoFileExists(t, filepath.Join(env.uploadDir, afterFirst.ProfilePicture))

	// Removing lands on the default sentinel and deletes the stored file.
	req := httptest.NewRequest(http.MethodPost, "/remove_profile_picture", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var afterRemove dto.UserDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &afterRemove))
	require.Equal(t, constants.DefaultProfilePicture, afterRemove.ProfilePicture)
	require.NoFileExists(t, filepath.Join(env.uploadDir, afterSecond.ProfilePicture))

	// The upload directory holds no leftover files.
	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestProfileHandler_RejectsUnsupportedExtension(t *testing.T) {
	env := setupProfileTestEnv(t)
	cookies := env.register(t, "picuser")

	w := env.uploadPicture(t, "malware.exe", cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
