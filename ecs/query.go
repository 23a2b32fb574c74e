package ecs

import "github.com/milk9111/sanity/ecs/component"

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]componentStore)
	}
	if existing, ok := w.stores[kind.ID()]; ok {
		set, _ := existing.(*sparseSet[T])
		return set
	}
	if !create {
		return nil
	}
	set := &sparseSet[T]{}
	w.stores[kind.ID()] = set
	return set
}

// Add attaches value to e, replacing any previous component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	set := storeFor(w, kind, true)
	if set == nil {
		return component.ErrInvalidComponentKind
	}
	set.set(e.id(), value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	return storeFor(w, kind, false).get(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return storeFor(w, kind, false).remove(e.id())
}

// ForEach visits every live entity holding kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	set := storeFor(w, kind, false)
	if set == nil || fn == nil {
		return
	}
	for _, id := range set.ids() {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		if v, ok := set.get(id); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities holding both kinds, iterating the smaller store.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	ids := sa.ids()
	if sb.size() < sa.size() {
		ids = sb.ids()
	}
	for _, id := range ids {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// First returns the first live entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	set := storeFor(w, kind, false)
	if set == nil {
		return 0, false
	}
	for _, id := range set.dense {
		if e, ok := w.entities.entity(id); ok {
			return e, true
		}
	}
	return 0, false
}
