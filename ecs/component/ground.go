package component

import "github.com/milk9111/sanity/common"

// Ground is a static level box, kept for drawing.
type Ground struct {
	Box common.Box
}

var GroundComponent = NewComponent[Ground]()
