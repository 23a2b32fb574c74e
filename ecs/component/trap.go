package component

import (
	"github.com/milk9111/sanity/combat"
	"github.com/milk9111/sanity/common"
)

// Trap is a delayed strike armed by the player entering Area.
type Trap struct {
	Strike *combat.DelayedStrike
	Area   common.Box
}

var TrapComponent = NewComponent[Trap]()
