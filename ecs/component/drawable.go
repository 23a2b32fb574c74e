package component

import (
	"image/color"

	"github.com/milk9111/sanity/common"
)

// Drawable is a flat debug rectangle.
type Drawable struct {
	Color color.Color
	Size  common.Vec2
}

var DrawableComponent = NewComponent[Drawable]()
