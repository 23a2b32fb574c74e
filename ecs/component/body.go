package component

import "github.com/milk9111/sanity/physics"

type Body struct {
	Rigid *physics.RigidBody
}

var BodyComponent = NewComponent[Body]()
