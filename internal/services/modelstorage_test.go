package services

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilename(t *testing.T) {
	for _, ok := range []string{"skull.obj", "skull.mtl", "a b.png", "x.y.z", "skull..v2.obj", "..hidden"} {
		assert.NoError(t, ValidateFilename(ok), ok)
	}
	for _, bad := range []string{"", ".", "..", "../etc/passwd", "a/b.obj", `a\b.obj`, "nul\x00.obj"} {
		assert.ErrorIs(t, ValidateFilename(bad), ErrInvalidFilename, bad)
	}
}

func TestAssetStore_Upload(t *testing.T) {
	dir := t.TempDir()
	store := NewAssetStore(newTestDB(t), dir)

	n, err := store.Upload("skull.obj", strings.NewReader("v 0 0 0\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)

	data, err := os.ReadFile(filepath.Join(dir, "skull.obj"))
	require.NoError(t, err)
	assert.Equal(t, "v 0 0 0\n", string(data))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "skull.obj", list[0].Filename)
	assert.Nil(t, list[0].Category)

	// re-upload overwrites the file and keeps the row
	cat := "bones"
	n, err = store.Upload("skull.obj", strings.NewReader("v"), &cat)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	list, err = store.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Category)
	assert.Equal(t, "bones", *list[0].Category)
}

func TestAssetStore_UploadTruncates(t *testing.T) {
	dir := t.TempDir()
	store := NewAssetStore(newTestDB(t), dir)

	body := io.LimitReader(zeroReader{}, MaxUploadSize+1)
	n, err := store.Upload("big.obj", body, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(MaxUploadSize), n)

	info, err := os.Stat(filepath.Join(dir, "big.obj"))
	require.NoError(t, err)
	assert.Equal(t, int64(MaxUploadSize), info.Size())
}

func TestAssetStore_FailedUploadKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	store := NewAssetStore(newTestDB(t), dir)

	_, err := store.Upload("skull.obj", strings.NewReader("v 0 0 0\n"), nil)
	require.NoError(t, err)

	body := io.MultiReader(strings.NewReader("v 1"), failingReader{})
	_, err = store.Upload("skull.obj", body, nil)
	require.Error(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "skull.obj"))
	require.NoError(t, err)
	assert.Equal(t, "v 0 0 0\n", string(data))

	files, err := store.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"skull.obj"}, files)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no staging file is left behind")
}

func TestAssetStore_Attachments(t *testing.T) {
	dir := t.TempDir()
	store := NewAssetStore(newTestDB(t), dir)

	_, err := store.UploadMaterial(1, "skull.mtl", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = os.Stat(filepath.Join(dir, "skull.mtl"))
	assert.True(t, os.IsNotExist(err), "nothing is written for a missing model")

	_, err = store.Upload("skull.obj", strings.NewReader("v"), nil)
	require.NoError(t, err)
	list, err := store.List()
	require.NoError(t, err)
	id := list[0].ID

	n, err := store.UploadMaterial(id, "skull.mtl", bytes.NewReader([]byte("newmtl a")))
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
	_, err = store.UploadTexture(id, "skull.png", strings.NewReader("png"))
	require.NoError(t, err)

	m, err := store.Lookup(id)
	require.NoError(t, err)
	assert.Equal(t, "skull.mtl", *m.Material)
	assert.Equal(t, "skull.png", *m.Texture)

	_, err = store.Lookup(id + 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.UploadTexture(id, "../escape.png", strings.NewReader("png"))
	assert.ErrorIs(t, err, ErrInvalidFilename)
}

func TestAssetStore_Files(t *testing.T) {
	dir := t.TempDir()
	store := NewAssetStore(newTestDB(t), dir)

	_, err := store.Upload("a.obj", strings.NewReader("v"), nil)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orphan.obj"), []byte("v"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	files, err := store.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.obj", "orphan.obj"}, files)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
