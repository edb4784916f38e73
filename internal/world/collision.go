package world

import (
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// collisionCellSize must cover the largest touching distance: a large
// hazard (radius 40) against the ship.
const collisionCellSize = 60.0

// Explosion tuning
const (
	debrisCount    = 8
	debrisSpeed    = 60.0
	debrisLifetime = 0.6
	shipDebris     = 20
)

// collectCollidables sorts the live objects into the scratch slices.
func (w *World) collectCollidables() {
	w.hazards = w.hazards[:0]
	w.saucers = w.saucers[:0]
	w.projectiles = w.projectiles[:0]

	for _, obj := range w.objects {
		switch o := obj.(type) {
		case *object.Asteroid:
			w.hazards = append(w.hazards, o)
		case *object.Saucer:
			w.saucers = append(w.saucers, o)
		case *object.Projectile:
			w.projectiles = append(w.projectiles, o)
		}
	}

	w.grid.Reset()
	for i, a := range w.hazards {
		w.grid.Add(physics.Point{X: a.X, Y: a.Y}, i)
	}
}

// touches reports whether two bodies overlap.
func touches(a, b object.Collider) bool {
	ax, ay := a.GetPosition()
	bx, by := b.GetPosition()
	return physics.CirclesOverlap(ax, ay, a.GetRadius(), bx, by, b.GetRadius())
}

// hits reports whether a shot is inside target. Shots are treated as points.
func hits(p *object.Projectile, target object.Collider) bool {
	tx, ty := target.GetPosition()
	return physics.PointInCircle(p.X, p.Y, tx, ty, target.GetRadius())
}

// checkCollisions detects and handles all collisions between objects.
func (w *World) checkCollisions(ev Events) {
	w.collectCollidables()

	w.checkProjectileHazardCollisions(ev)
	w.checkProjectileSaucerCollisions(ev)
	if w.player != nil {
		w.checkPlayerCollisions(ev)
	}
}

// checkProjectileHazardCollisions handles player shots hitting hazards.
// Hits split the hazard at once so the hazard population never reads zero
// while fragments are pending.
func (w *World) checkProjectileHazardCollisions(ev Events) {
	for _, p := range w.projectiles {
		if p.IsDestroyed() || p.Owner != object.FromPlayer {
			continue
		}
		w.grid.Near(physics.Point{X: p.X, Y: p.Y}, func(i int) bool {
			a := w.hazards[i]
			if a.IsDestroyed() || !hits(p, a) {
				return false
			}
			p.MarkDestroyed()
			w.destroyHazard(a)
			if ev != nil {
				ev.AddScore(a.Score())
			}
			return true
		})
	}
}

// checkProjectileSaucerCollisions handles player shots hitting saucers.
func (w *World) checkProjectileSaucerCollisions(ev Events) {
	for _, p := range w.projectiles {
		if p.IsDestroyed() || p.Owner != object.FromPlayer {
			continue
		}
		for _, s := range w.saucers {
			if s.IsDestroyed() || !hits(p, s) {
				continue
			}
			p.MarkDestroyed()
			s.MarkDestroyed()
			object.SpawnExplosion(w.rng, s.X, s.Y, debrisCount, debrisSpeed, debrisLifetime, w)
			if ev != nil {
				ev.AddScore(s.Score())
			}
			break
		}
	}
}

// checkPlayerCollisions checks the ship against hazards, saucers and saucer
// shots. At most one life is lost per tick.
func (w *World) checkPlayerCollisions(ev Events) {
	ship := w.player

	hit := false
	w.grid.Near(physics.Point{X: ship.X, Y: ship.Y}, func(i int) bool {
		a := w.hazards[i]
		if a.IsDestroyed() || !touches(ship, a) {
			return false
		}
		w.destroyHazard(a)
		hit = true
		return true
	})

	if !hit {
		for _, s := range w.saucers {
			if !s.IsDestroyed() && touches(ship, s) {
				s.MarkDestroyed()
				hit = true
				break
			}
		}
	}

	if !hit {
		for _, p := range w.projectiles {
			if !p.IsDestroyed() && p.Owner == object.FromSaucer &&
				hits(p, ship) {
				p.MarkDestroyed()
				hit = true
				break
			}
		}
	}

	if hit {
		w.killPlayer(ev)
	}
}

// destroyHazard marks a hazard destroyed and adds its fragments directly to
// the world.
func (w *World) destroyHazard(a *object.Asteroid) {
	a.MarkDestroyed()
	object.SpawnExplosion(w.rng, a.X, a.Y, debrisCount, debrisSpeed, debrisLifetime, w)
	for _, frag := range a.Split(w.rng) {
		w.objects = append(w.objects, frag)
	}
}

func (w *World) killPlayer(ev Events) {
	ship := w.player
	ship.MarkDestroyed()
	object.SpawnExplosion(w.rng, ship.X, ship.Y, shipDebris, debrisSpeed, 1.0, w)
	w.player = nil
	if ev != nil {
		ev.LoseLife()
	}
}
