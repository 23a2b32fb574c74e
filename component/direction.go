package component

import "github.com/milk9111/sanity/common"

type Direction int

const (
	DirNone Direction = iota
	DirRight
	DirLeft
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Vector is the unit offset for d.
func (d Direction) Vector() common.Vec2 {
	switch d {
	case DirRight:
		return common.Vec2{X: 1}
	case DirLeft:
		return common.Vec2{X: -1}
	case DirUp:
		return common.Vec2{Y: 1}
	case DirDown:
		return common.Vec2{Y: -1}
	default:
		return common.Vec2{}
	}
}

// ParseDirection accepts the names String produces.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "right":
		return DirRight, true
	case "left":
		return DirLeft, true
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	}
	return DirNone, false
}

// ResolveAttackDirection picks up, then down, then left, then right, and
// falls back to the facing side when no direction is held.
func ResolveAttackDirection(in Input, facing float64) Direction {
	switch {
	case in.Up:
		return DirUp
	case in.Down:
		return DirDown
	case in.Left:
		return DirLeft
	case in.Right:
		return DirRight
	case facing < 0:
		return DirLeft
	default:
		return DirRight
	}
}

// Overrides holds a default value and optional per-direction replacements.
type Overrides[T any] struct {
	Default T
	ByDir   map[Direction]T
}

func (o Overrides[T]) Resolve(d Direction) T {
	if v, ok := o.ByDir[d]; ok {
		return v
	}
	return o.Default
}

func (o *Overrides[T]) Set(d Direction, v T) {
	if o == nil {
		return
	}
	if o.ByDir == nil {
		o.ByDir = make(map[Direction]T)
	}
	o.ByDir[d] = v
}
