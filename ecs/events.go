package ecs

// EventType tags what happened to the world during a step.
type EventType uint8

const (
	// EventCombat carries a component.CombatEvent from the resolver.
	EventCombat EventType = iota + 1
	// EventDespawn is pushed when a dead actor leaves the world.
	EventDespawn
	// EventDepleted is pushed when a persistent actor runs out of resource.
	EventDepleted
)

func (t EventType) String() string {
	switch t {
	case EventCombat:
		return "combat"
	case EventDespawn:
		return "despawn"
	case EventDepleted:
		return "depleted"
	default:
		return "unknown"
	}
}

// Event is one world notification. Data is typed per EventType.
type Event struct {
	Type EventType
	Data any
}

// EventQueue collects events between drains. Systems push during a step and
// the owner of the world drains once the step is done.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil || evt.Type == 0 {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events in push order and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Count reports how many queued events have type t.
func (q *EventQueue) Count(t EventType) int {
	if q == nil {
		return 0
	}
	n := 0
	for _, evt := range q.items {
		if evt.Type == t {
			n++
		}
	}
	return n
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
