package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/sanity/common"
)

const (
	sampleRate   = 44100
	blipDuration = 0.09
)

// Dir is where optional wav clips are looked up.
var Dir = "assets"

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

func sharedContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// Sounds plays actor clips. A clip is read from Dir as wav when the file
// exists and is otherwise synthesized as a short blip pitched from its name.
type Sounds struct {
	// Volumes scales individual clips, keyed by clip name.
	Volumes map[string]float64
	Muted   bool
	// OnPlay observes every request, muted or not.
	OnPlay func(clip string, pos common.Vec2)

	mu    sync.Mutex
	cache map[string][]byte
}

func NewSounds() *Sounds {
	return &Sounds{Volumes: map[string]float64{}, cache: map[string][]byte{}}
}

func (s *Sounds) Play(clip string, pos common.Vec2, volume, pitch float64) {
	if s == nil || clip == "" {
		return
	}
	if s.OnPlay != nil {
		s.OnPlay(clip, pos)
	}
	if s.Muted {
		return
	}

	pcm, err := s.pcm(clip, pitch)
	if err != nil {
		log.Printf("assets: %v", err)
		return
	}
	p := sharedContext().NewPlayerFromBytes(pcm)
	if v, ok := s.Volumes[clip]; ok {
		volume *= v
	}
	p.SetVolume(common.Clamp(volume, 0, 1))
	p.Play()
}

// pcm returns 16-bit little-endian stereo samples for clip.
func (s *Sounds) pcm(clip string, pitch float64) ([]byte, error) {
	if pitch <= 0 {
		pitch = 1
	}
	key := fmt.Sprintf("%s@%.2f", clip, pitch)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache == nil {
		s.cache = map[string][]byte{}
	}
	if b, ok := s.cache[key]; ok {
		return b, nil
	}

	b, err := loadWav(clip)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = blip(frequencyFor(clip)*pitch, blipDuration)
	}
	s.cache[key] = b
	return b, nil
}

// loadWav returns nil, nil when the clip has no file on disk.
func loadWav(clip string) ([]byte, error) {
	if !strings.EqualFold(filepath.Ext(clip), ".wav") {
		return nil, nil
	}
	data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clip)))
	if err != nil {
		return nil, nil
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", clip, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read wav %q: %w", clip, err)
	}
	return pcm, nil
}

func frequencyFor(clip string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clip))
	return 220 + float64(h.Sum32()%660)
}

// blip is a sine tone with a linear fade out.
func blip(freq, duration float64) []byte {
	n := int(sampleRate * duration)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*t) * env * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
