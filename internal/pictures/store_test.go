package pictures

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/playmatch/sports-matchmaking-api/internal/constants"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("profile_picture", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["profile_picture"][0]
}

func TestStore_Save(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("alice", fileHeader(t, "photo.PNG"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(name, "alice-"))
	require.Equal(t, ".png", filepath.Ext(name))
	require.FileExists(t, filepath.Join(store.Dir(), name))
}

func TestStore_Save_UniqueNamesForSameUser(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	// Rapid successive uploads must never share a stored name.
	first, err := store.Save("alice", fileHeader(t, "photo.png"))
	require.NoError(t, err)
	second, err := store.Save("alice", fileHeader(t, "photo.png"))
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.FileExists(t, filepath.Join(store.Dir(), first))
	require.FileExists(t, filepath.Join(store.Dir(), second))
}

func TestStore_Save_RejectsUnsupportedExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("alice", fileHeader(t, "script.sh"))
	require.ErrorIs(t, err, ErrUnsupportedExtension)
}

func TestStore_Remove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("alice", fileHeader(t, "photo.jpg"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	require.NoFileExists(t, filepath.Join(store.Dir(), name))

	// Removing the sentinel or an already-missing file is not an error.
	require.NoError(t, store.Remove(constants.DefaultProfilePicture))
	require.NoError(t, store.Remove(name))
}
