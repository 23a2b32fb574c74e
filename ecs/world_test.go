package ecs

import (
	"testing"

	"github.com/milk9111/sanity/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	DestroyEntity(w, first)
	second := CreateEntity(w)

	if first.id() != second.id() {
		t.Fatalf("expected slot reuse, got %v and %v", first, second)
	}
	if first == second {
		t.Fatalf("recycled entity must not equal the stale handle")
	}
	if IsAlive(w, first) {
		t.Fatalf("stale handle reported alive")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, ints.Kind()) {
					t.Fatalf("e2 should not have an int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, ints.Kind()) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, strs.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, strs.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs.Kind()) || !Has(w, e2, strs.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e2, strs.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)

	if err := Add[int](w, e, h.Kind(), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	var zero component.ComponentKind[int]
	live := CreateEntity(w)
	if err := Add(w, live, zero, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	_ = Add(w, e1, h.Kind(), intPtr(1))
	_ = Add(w, e3, h.Kind(), intPtr(3))

	seen := map[Entity]int{}
	ForEach(w, h.Kind(), func(e Entity, v *int) { seen[e] = *v })

	if seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected ForEach result %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEachToleratesDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 4; i++ {
		_ = Add(w, CreateEntity(w), h.Kind(), intPtr(i))
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if _, ok := First(w, h.Kind()); ok {
		t.Fatalf("expected no entities left")
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("two"))
	_ = Add(w, e3, kb, stringPtr("three"))

	var res []Entity
	ForEach2(w, ka, kb, func(e Entity, _ *int, _ *string) { res = append(res, e) })
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}

	DestroyEntity(w, e2)
	res = nil
	ForEach2(w, ka, kb, func(e Entity, _ *int, _ *string) { res = append(res, e) })
	if len(res) != 0 {
		t.Fatalf("expected empty result after destroy, got %v", res)
	}
}

type countingSystem struct {
	calls *[]string
	name  string
}

func (s countingSystem) Update(*World) {
	*s.calls = append(*s.calls, s.name)
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var calls []string
	s := NewScheduler(countingSystem{&calls, "a"}, nil, countingSystem{&calls, "b"})
	s.Add(countingSystem{&calls, "c"})
	s.Update(NewWorld())

	if len(calls) != 3 || calls[0] != "a" || calls[1] != "b" || calls[2] != "c" {
		t.Fatalf("unexpected order %v", calls)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	q := w.Events()

	q.Push(Event{Type: EventCombat, Data: 1})
	q.Push(Event{})
	q.Push(Event{Type: EventDespawn})
	q.Push(Event{Type: EventCombat, Data: 2})

	if q.Len() != 3 {
		t.Fatalf("untyped events should be dropped, got %d queued", q.Len())
	}
	if got := q.Count(EventCombat); got != 2 {
		t.Fatalf("expected 2 combat events, got %d", got)
	}

	events := q.Drain()
	if len(events) != 3 || events[0].Data != 1 || events[2].Data != 2 {
		t.Fatalf("unexpected drain %v", events)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatal("queue should be empty after drain")
	}
	if EventDepleted.String() != "depleted" || EventType(99).String() != "unknown" {
		t.Fatal("unexpected event names")
	}
}
