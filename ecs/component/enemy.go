package component

import "github.com/milk9111/sanity/common"

// EnemyTag marks an AI-driven actor and remembers where it came from so a
// prefab reload can rebuild it in place.
type EnemyTag struct {
	Prefab string
	Spawn  common.Vec2
}

var EnemyTagComponent = NewComponent[EnemyTag]()
