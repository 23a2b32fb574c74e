package component

import "github.com/milk9111/sanity/actor"

// Actor binds an entity to the controller that runs it.
type Actor struct {
	Controller *actor.Controller
}

var ActorComponent = NewComponent[Actor]()
