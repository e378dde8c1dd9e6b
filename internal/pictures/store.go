// Package pictures manages uploaded profile pictures on the local
// filesystem. Stored filenames embed the owner's username and an xid so
// rapid successive uploads by the same user never overwrite each other.
package pictures

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/playmatch/sports-matchmaking-api/internal/constants"
	"github.com/rs/xid"
)

var (
	// ErrUnsupportedExtension is returned for uploads outside the
	// png/jpg/jpeg/gif allowlist.
	ErrUnsupportedExtension = errors.New("unsupported picture file extension")
)

// Store saves and deletes picture files under a single directory.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a Store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Allowed reports whether the upload's filename carries an accepted
// image extension.
func Allowed(filename string) bool {
	return constants.AllowedPictureExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Save writes the uploaded file under a fresh collision-resistant name and
// returns the stored filename.
func (s *Store) Save(username string, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !constants.AllowedPictureExtensions[ext] {
		return "", ErrUnsupportedExtension
	}

	name := fmt.Sprintf("%s-%s%s", username, xid.New().String(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create picture file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write picture file: %w", err)
	}

	return name, nil
}

// Remove deletes a stored picture file. The default sentinel is not a
// managed file and is left alone; a missing file is not an error.
func (s *Store) Remove(name string) error {
	if name == "" || name == constants.DefaultProfilePicture {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove picture file: %w", err)
	}
	return nil
}
