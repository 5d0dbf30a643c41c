package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader the way echo hands one to
// the handler.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("images", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["images"][0]
}

func TestSaveStoresFileUnderOpaqueName(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	filename, err := store.Save(fileHeader(t, "Holiday Photo.JPG", []byte("fake jpeg data")))
	require.NoError(t, err)

	// The client-sent filename never reaches the filesystem.
	assert.NotContains(t, filename, "Holiday")
	assert.True(t, strings.HasSuffix(filename, ".jpg"), "extension kept, lowercased: %s", filename)

	data, err := os.ReadFile(filepath.Join(store.Dir(), filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake jpeg data"), data)
}

func TestSaveGeneratesDistinctNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(fileHeader(t, "a.jpg", []byte("one")))
	require.NoError(t, err)
	second, err := store.Save(fileHeader(t, "a.jpg", []byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRemove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	filename, err := store.Save(fileHeader(t, "a.jpg", []byte("data")))
	require.NoError(t, err)

	require.NoError(t, store.Remove(filename))
	_, err = os.Stat(filepath.Join(store.Dir(), filename))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveRejectsPathTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	err = store.Remove("../../etc/passwd")
	assert.Error(t, err)
}

func TestNewLocalStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
