package scene

import "reflect"

// Entity is a unique identifier for an entity
type Entity uint64

// Component is a marker interface for all components
type Component interface{}

// World contains all entities and their components.
// It is not safe for concurrent use; hosts mutate it from their update pass only.
type World struct {
	nextEntityID Entity
	entities     map[Entity]map[reflect.Type]Component
	order        []Entity // spawn order, queries walk it for stable results
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		entities:     make(map[Entity]map[reflect.Type]Component),
	}
}

// Spawn creates a new entity with the given components and returns its ID
func (w *World) Spawn(components ...Component) Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.entities[id] = make(map[reflect.Type]Component, len(components))
	w.order = append(w.order, id)
	w.Insert(id, components...)
	return id
}

// Insert adds or replaces components on an existing entity
func (w *World) Insert(e Entity, components ...Component) {
	comps, ok := w.entities[e]
	if !ok {
		return // Entity doesn't exist
	}
	for _, c := range components {
		comps[reflect.TypeOf(c)] = c
	}
}

// Despawn removes an entity and all its components. Unknown IDs are ignored.
func (w *World) Despawn(e Entity) {
	if _, ok := w.entities[e]; !ok {
		return
	}
	delete(w.entities, e)
	for i, id := range w.order {
		if id == e {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Alive reports whether the entity exists
func (w *World) Alive(e Entity) bool {
	_, ok := w.entities[e]
	return ok
}

// Len returns the number of entities in the world
func (w *World) Len() int {
	return len(w.entities)
}

// Entry pairs an entity with one of its components
type Entry[T any] struct {
	Entity Entity
	Value  T
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Query returns every entity carrying a component of type T, in spawn order
func Query[T any](w *World) []Entry[T] {
	t := typeOf[T]()
	var result []Entry[T]
	for _, e := range w.order {
		if c, ok := w.entities[e][t]; ok {
			result = append(result, Entry[T]{Entity: e, Value: c.(T)})
		}
	}
	return result
}

// With returns the IDs of entities carrying a component of type T
func With[T any](w *World) []Entity {
	t := typeOf[T]()
	var result []Entity
	for _, e := range w.order {
		if _, ok := w.entities[e][t]; ok {
			result = append(result, e)
		}
	}
	return result
}

// Get retrieves the T component of an entity
func Get[T any](w *World, e Entity) (T, bool) {
	var zero T
	comps, ok := w.entities[e]
	if !ok {
		return zero, false
	}
	c, ok := comps[typeOf[T]()]
	if !ok {
		return zero, false
	}
	return c.(T), true
}

// Has checks if an entity has a component of type T
func Has[T any](w *World, e Entity) bool {
	_, ok := Get[T](w, e)
	return ok
}
