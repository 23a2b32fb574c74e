package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCooldown(t *testing.T) {
	c := NewCooldown(0.25)
	assert.True(t, c.Ready(0), "never used is ready")

	c.Trigger(1)
	assert.False(t, c.Ready(1.1))
	assert.InDelta(t, 0.15, c.Remaining(1.1), 1e-9)
	assert.True(t, c.Ready(1.25))

	last, ok := c.LastUsed()
	assert.True(t, ok)
	assert.Equal(t, 1.0, last)

	c.Reset()
	assert.True(t, c.Ready(1))
}

func TestCooldownClampsNegativeDuration(t *testing.T) {
	c := NewCooldown(-3)
	assert.Equal(t, 0.0, c.Duration)

	raw := Cooldown{Duration: -1}
	raw.Trigger(5)
	assert.True(t, raw.Ready(5))
}

func TestWindowNeverShortens(t *testing.T) {
	var w Window
	assert.False(t, w.Active(0))

	w.Extend(0, 0.5)
	w.Extend(0.1, 0.1)
	assert.Equal(t, 0.5, w.Until())
	assert.True(t, w.Active(0.49))
	assert.False(t, w.Active(0.5))

	w.Extend(0.4, 0.3)
	assert.InDelta(t, 0.7, w.Until(), 1e-9)

	w.Clear()
	assert.False(t, w.Active(0.6))
}
