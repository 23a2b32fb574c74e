package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Change
		ok   bool
	}{
		{"prefabs/enemy.yaml", Change{Name: "enemy.yaml", Kind: SpecChanged}, true},
		{"prefabs/level.YML", Change{Name: "level.YML", Kind: SpecChanged}, true},
		{"prefabs/scripts/engage.tengo", Change{Name: "scripts/engage.tengo", Kind: ScriptChanged}, true},
		{"prefabs/notes.txt", Change{}, false},
		{"prefabs/.enemy.yaml.swp", Change{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := classify(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enemy.yaml"), []byte("name: x\n"), 0o644))

	select {
	case change := <-w.Events:
		assert.Equal(t, Change{Name: "enemy.yaml", Kind: SpecChanged}, change)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	_, open := <-w.Events
	assert.False(t, open)
}
