package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	storage := NewFileStorage(path)

	// Missing file reads as logged out.
	token, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, storage.Save("tok1"))

	token, err = storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok1", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "credential file must not be world-readable")
}

func TestFileStorageCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "auth.json")
	storage := NewFileStorage(path)

	require.NoError(t, storage.Save("tok1"))

	token, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok1", token)
}

func TestFileStorageClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	storage := NewFileStorage(path)

	require.NoError(t, storage.Save("tok1"))
	require.NoError(t, storage.Clear())

	token, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing an already-absent entry succeeds.
	require.NoError(t, storage.Clear())
}

func TestFileStorageCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	storage := NewFileStorage(path)
	token, err := storage.Load()
	require.NoError(t, err, "a corrupt entry degrades to logged out, not to an error")
	assert.Empty(t, token)
}

func TestFileStorageOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	storage := NewFileStorage(path)

	require.NoError(t, storage.Save("tok1"))
	require.NoError(t, storage.Save("tok2"))

	token, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok2", token)
}

func TestMemoryStorage(t *testing.T) {
	storage := NewMemoryStorage()

	token, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, storage.Save("tok1"))
	token, _ = storage.Load()
	assert.Equal(t, "tok1", token)

	require.NoError(t, storage.Clear())
	token, _ = storage.Load()
	assert.Empty(t, token)
}
