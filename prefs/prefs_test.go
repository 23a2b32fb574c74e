package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDefaults(t *testing.T) {
	var m Memory
	assert.Equal(t, 7, m.GetInt("missing", 7))
	assert.False(t, m.HasKey("missing"))

	m.SetInt("k", 3)
	assert.Equal(t, 3, m.GetInt("k", 7))
	assert.True(t, m.HasKey("k"))

	m.DeleteKey("k")
	assert.Equal(t, 7, m.GetInt("k", 7))
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save", "prefs.yaml")

	f, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, 100, f.GetInt("PLAYER_SANITY", 100))

	f.SetInt("PLAYER_SANITY", 55)
	f.SetInt("HUB_VISITED", 1)

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, 55, reopened.GetInt("PLAYER_SANITY", 100))
	assert.True(t, reopened.HasKey("HUB_VISITED"))
}

func TestOpenFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("values: [1, 2"), 0o644))

	_, err := OpenFile(path)
	assert.Error(t, err)
}
