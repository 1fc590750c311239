package sim

// expirationSystem despawns TTL-carrying entities when their time runs
// out. TTL zero means the entity never expires.
func (e *Engine) expirationSystem() {
	for _, ent := range e.world.Entities() {
		if ent.TTL == 0 {
			continue
		}
		ent.TTL--
		if ent.TTL <= 0 {
			e.world.Despawn(ent.ID)
		}
	}
}
