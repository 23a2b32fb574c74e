package component

// PlayerTag marks the single player-driven actor.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
