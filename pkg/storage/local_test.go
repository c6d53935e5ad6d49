package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func multipartFile(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	reader := multipart.NewReader(&buf, mw.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "/uploads", zap.NewNop())
	require.NoError(t, err)

	fh := multipartFile(t, "images", "photo.png", "fake image bytes")

	url, err := store.Save(fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestLocalStorageSaveUniqueNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads", zap.NewNop())
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		fh := multipartFile(t, "images", "same.jpg", "content")
		url, err := store.Save(fh)
		require.NoError(t, err)
		assert.False(t, seen[url], "duplicate stored name %s", url)
		seen[url] = true
	}
}

func TestLocalStorageRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "/uploads", zap.NewNop())
	require.NoError(t, err)

	fh := multipartFile(t, "images", "photo.jpg", "bytes")
	url, err := store.Save(fh)
	require.NoError(t, err)

	require.NoError(t, store.Remove(url))

	_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))

	// Removing again reports the missing file
	assert.Error(t, store.Remove(url))
}
