package constants

// Session
const (
	SessionCookieName  = "playmatch_session"
	ContextKeyUsername = "username"
	SessionKeyEmail    = "email"

	// Session lifetimes in seconds. The extended value applies when the
	// login request carries the remember-me flag.
	SessionMaxAge         = 86400      // 1 day
	SessionMaxAgeExtended = 86400 * 30 // 30 days
)

// Credential constraints
const (
	MinUsernameLength = 4
	MaxUsernameLength = 25
	MinPasswordLength = 8
)

// Profile pictures
const (
	// DefaultProfilePicture is the sentinel stored when a user has no
	// uploaded picture. It is never a file the picture store manages.
	DefaultProfilePicture = "default.jpg"
)

// AllowedPictureExtensions lists the accepted upload extensions (lowercase,
// with leading dot).
var AllowedPictureExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Playing levels, in facet order.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)
