package sim

// EntityView is the render-facing projection of an entity.
type EntityView struct {
	ID      EntityID
	Kind    Kind
	Pos     Vec2
	Rot     float64
	Radius  float64
	Visible bool
	Size    SizeClass
	Points  []Vec2
}

// Snapshot is a complete, immutable view of the simulation at one tick.
// Two engines with the same seed and input schedule produce equal
// snapshots at every tick.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lives    int
	Status   Status
	Entities []EntityView
}

// Snapshot captures the current state. Entity order follows spawn
// order.
func (e *Engine) Snapshot() Snapshot {
	live := e.world.Entities()
	views := make([]EntityView, 0, len(live))
	for _, ent := range live {
		views = append(views, EntityView{
			ID:      ent.ID,
			Kind:    ent.Kind,
			Pos:     ent.Pos,
			Rot:     ent.Rot,
			Radius:  ent.Radius,
			Visible: ent.Visible,
			Size:    ent.Size,
			Points:  ent.Points,
		})
	}
	return Snapshot{
		Tick:     e.tick,
		Score:    e.score,
		Lives:    e.lives,
		Status:   e.status,
		Entities: views,
	}
}
