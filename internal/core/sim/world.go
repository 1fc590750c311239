package sim

// World stores entities in spawn order. Iteration order is part of the
// determinism contract: systems walk the slice front to back, and the
// RNG is consumed in that same order on every run.
type World struct {
	entities []*Entity
	byID     map[EntityID]*Entity
	nextID   EntityID
}

func NewWorld() *World {
	return &World{
		byID:   make(map[EntityID]*Entity),
		nextID: 1,
	}
}

// Spawn assigns an ID and registers the entity.
func (w *World) Spawn(e *Entity) *Entity {
	e.ID = w.nextID
	w.nextID++
	w.entities = append(w.entities, e)
	w.byID[e.ID] = e
	return e
}

// Despawn marks an entity for removal. The entity stays visible to the
// rest of the current phase; Reap removes marked entities between
// phases so hit resolution always sees a stable world.
func (w *World) Despawn(id EntityID) {
	if e, ok := w.byID[id]; ok {
		e.dead = true
	}
}

// Get returns a live entity or nil.
func (w *World) Get(id EntityID) *Entity {
	e, ok := w.byID[id]
	if !ok || e.dead {
		return nil
	}
	return e
}

// Entities returns live entities in spawn order.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, 0, len(w.entities))
	for _, e := range w.entities {
		if !e.dead {
			out = append(out, e)
		}
	}
	return out
}

// OfKind returns live entities of one kind in spawn order.
func (w *World) OfKind(k Kind) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if !e.dead && e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Count reports live entities of one kind.
func (w *World) Count(k Kind) int {
	n := 0
	for _, e := range w.entities {
		if !e.dead && e.Kind == k {
			n++
		}
	}
	return n
}

// Reap drops entities marked by Despawn.
func (w *World) Reap() {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.dead {
			delete(w.byID, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	w.entities = kept
}
