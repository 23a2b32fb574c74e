package ai

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/milk9111/sanity/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngageScriptVetoesChase(t *testing.T) {
	guard, err := NewEngageScript("below", []byte(`engage = dy <= 0.5`))
	require.NoError(t, err)

	assert.True(t, guard.Allows(2, 0, 2))
	assert.False(t, guard.Allows(2, 1, 2.2))

	target := &movingTarget{pos: common.V(3, 1), present: true}
	m := NewMachine(WalkerDetection(), common.Vec2{}, target)
	m.Guard = guard
	m.Update(Perception{})
	assert.Equal(t, Idle, m.Mode())

	target.pos.Y = 0
	m.Update(Perception{})
	assert.Equal(t, Chasing, m.Mode())
}

func TestEngageScriptCompileError(t *testing.T) {
	_, err := NewEngageScript("broken", []byte(`engage = (`))
	assert.Error(t, err)
}

func TestEngageScriptRuntimeErrorDoesNotVeto(t *testing.T) {
	var logged bytes.Buffer
	log.SetOutput(&logged)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	guard, err := NewEngageScript("panics", []byte(`engage = [1][distance]`))
	require.NoError(t, err)
	assert.True(t, guard.Allows(0, 0, 5))
	assert.Contains(t, logged.String(), "ai: script panics: run:")

	var nilGuard *EngageScript
	assert.True(t, nilGuard.Allows(0, 0, 0))
}
