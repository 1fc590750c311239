package sim

// hit records one intersection between an attacker (the hittable) and a
// victim (the hurtable) for a registered kind pair.
type hit struct {
	attacker *Entity
	victim   *Entity
}

// collisionPairs lists the kind pairs that interact, in resolution
// order. Pairs not listed here never produce hits (asteroids pass
// through each other, particles touch nothing).
var collisionPairs = [][2]Kind{
	{KindBullet, KindAsteroid},
	{KindBullet, KindUfo},
	{KindBullet, KindShip},
	{KindAsteroid, KindShip},
	{KindAsteroid, KindUfo},
	{KindUfo, KindShip},
}

func intersects(a, b *Entity) bool {
	d := a.Pos.Sub(b.Pos)
	r := a.Radius + b.Radius
	return d.X*d.X+d.Y*d.Y < r*r
}

// collisionSystem reports every intersecting collidable pair. Hits are
// gathered before any resolution so one tick's outcomes never depend on
// resolution side effects.
func (e *Engine) collisionSystem() []hit {
	var hits []hit
	for _, pair := range collisionPairs {
		attackers := e.world.OfKind(pair[0])
		victims := e.world.OfKind(pair[1])
		for _, a := range attackers {
			if !a.Collidable {
				continue
			}
			for _, v := range victims {
				if !v.Collidable {
					continue
				}
				if intersects(a, v) {
					hits = append(hits, hit{attacker: a, victim: v})
				}
			}
		}
	}
	return hits
}

// resolveHits applies hit outcomes in pair order. Each entity dies at
// most once per tick; later hits against an already-resolved entity are
// dropped.
func (e *Engine) resolveHits(hits []hit) {
	resolved := make(map[EntityID]bool, len(hits))

	for _, h := range hits {
		if resolved[h.attacker.ID] || resolved[h.victim.ID] {
			continue
		}
		switch h.victim.Kind {
		case KindAsteroid:
			e.killAsteroid(h.victim)
			resolved[h.victim.ID] = true
			e.world.Despawn(h.attacker.ID)
			resolved[h.attacker.ID] = true
		case KindUfo:
			e.killUfo(h.victim, h.attacker.Kind == KindBullet)
			resolved[h.victim.ID] = true
			if h.attacker.Kind == KindBullet {
				e.world.Despawn(h.attacker.ID)
				resolved[h.attacker.ID] = true
			}
		case KindShip:
			e.killShip(h.victim)
			resolved[h.victim.ID] = true
		}
	}
}
