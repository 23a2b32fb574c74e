package assets

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/sanity/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlipShape(t *testing.T) {
	b := blip(440, 0.05)
	n := int(sampleRate * 0.05)
	require.Len(t, b, n*4)

	for i := 0; i < n; i++ {
		l := binary.LittleEndian.Uint16(b[i*4:])
		r := binary.LittleEndian.Uint16(b[i*4+2:])
		require.Equal(t, l, r, "stereo channels match")
	}
	last := int16(binary.LittleEndian.Uint16(b[(n-1)*4:]))
	assert.Less(t, int(last), 200)
	assert.Greater(t, int(last), -200)
}

func TestFrequencyForIsStable(t *testing.T) {
	for _, clip := range []string{"jump.wav", "hit.wav", "x"} {
		f := frequencyFor(clip)
		assert.Equal(t, f, frequencyFor(clip))
		assert.GreaterOrEqual(t, f, 220.0)
		assert.Less(t, f, 880.0)
	}
	assert.NotEqual(t, frequencyFor("jump.wav"), frequencyFor("hit.wav"))
}

func TestPCMFallsBackAndCaches(t *testing.T) {
	prev := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = prev })

	s := NewSounds()
	a, err := s.pcm("missing.wav", 1)
	require.NoError(t, err)
	assert.Len(t, a, int(sampleRate*blipDuration)*4)

	b, err := s.pcm("missing.wav", 1)
	require.NoError(t, err)
	assert.Same(t, &a[0], &b[0])

	c, err := s.pcm("missing.wav", 2)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestPCMRejectsBrokenWav(t *testing.T) {
	prev := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = prev })
	require.NoError(t, os.WriteFile(filepath.Join(Dir, "bad.wav"), []byte("not a wav"), 0o644))

	_, err := NewSounds().pcm("bad.wav", 1)
	assert.Error(t, err)
}

func TestMutedPlayOnlyReports(t *testing.T) {
	s := NewSounds()
	s.Muted = true
	var got []string
	s.OnPlay = func(clip string, _ common.Vec2) { got = append(got, clip) }

	s.Play("jump.wav", common.Vec2{}, 1, 1)
	s.Play("", common.Vec2{}, 1, 1)
	assert.Equal(t, []string{"jump.wav"}, got)
	assert.Empty(t, s.cache)
}
