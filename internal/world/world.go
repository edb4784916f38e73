// Package world owns the live entities and steps the simulation. It is the
// entity.Population the session core drives.
package world

import (
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/entity"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/lives"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Events receives the game-rule consequences of collisions.
type Events interface {
	AddScore(points int)
	LoseLife() lives.Outcome
}

// World holds every object on the field. It is not safe for concurrent use.
type World struct {
	bounds  physics.Bounds
	rng     object.Rand
	objects []object.Object
	spawned []object.Object
	player  *object.Ship

	// Scratch space reused by collision checks each tick
	grid        *physics.Grid
	hazards     []*object.Asteroid
	saucers     []*object.Saucer
	projectiles []*object.Projectile
}

// New creates an empty world covering bounds. Every random choice made by
// its objects (headings, shapes, saucer aim, debris) is drawn from rng.
func New(bounds physics.Bounds, rng object.Rand) *World {
	return &World{
		bounds: bounds,
		rng:    rng,
		grid:   physics.NewGrid(bounds, collisionCellSize),
	}
}

// Objects returns the live objects. The slice must not be modified.
func (w *World) Objects() []object.Object { return w.objects }

// Spawn queues obj to join the world at the end of the current step
// (implements object.Spawner).
func (w *World) Spawn(obj object.Object) {
	w.spawned = append(w.spawned, obj)
}

// Count implements entity.Population.
func (w *World) Count(kind entity.Kind) int {
	n := 0
	for _, obj := range w.objects {
		if object.IsDestroyed(obj) {
			continue
		}
		switch obj.(type) {
		case *object.Asteroid:
			if kind == entity.Hazard {
				n++
			}
		case *object.Ship:
			if kind == entity.Player {
				n++
			}
		case *object.Saucer:
			if kind == entity.Hostile {
				n++
			}
		}
	}
	return n
}

// Create implements entity.Population. Creating a player replaces any
// existing ship so there is never more than one.
func (w *World) Create(kind entity.Kind, pos physics.Point, attrs entity.Attributes) {
	switch kind {
	case entity.Hazard:
		w.objects = append(w.objects, object.NewAsteroid(w.rng, pos.X, pos.Y, attrs.Size, -1))
	case entity.Player:
		if w.player != nil {
			w.player.MarkDestroyed()
			w.compact()
		}
		w.player = object.NewShip(pos.X, pos.Y)
		w.objects = append(w.objects, w.player)
	case entity.Hostile:
		w.objects = append(w.objects, object.NewSaucer(pos.X, pos.Y, attrs.Saucer, attrs.Accuracy, w.bounds.Width))
	}
}

// Clear implements entity.Population.
func (w *World) Clear() {
	w.releaseAll(w.objects)
	w.releaseAll(w.spawned)
	w.objects = nil
	w.spawned = nil
	w.player = nil
}

// PlayerPosition implements entity.Population.
func (w *World) PlayerPosition() (physics.Point, bool) {
	if w.player == nil || w.player.IsDestroyed() {
		return physics.Point{}, false
	}
	return physics.Point{X: w.player.X, Y: w.player.Y}, true
}

// Step advances every object by one tick, then resolves collisions and
// reports their consequences to ev. ev may be nil.
func (w *World) Step(in input.Input, ev Events) error {
	ctx := object.UpdateContext{
		Delta:   config.TickTime,
		Input:   in,
		Bounds:  w.bounds,
		Spawner: w,
		Rand:    w.rng,
	}
	if p, ok := w.PlayerPosition(); ok {
		ctx.Player = p
		ctx.HasPlayer = true
	}

	kept := w.objects[:0] // reuse backing array
	for _, obj := range w.objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			w.release(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(w.objects[len(kept):])
	w.objects = kept
	if w.player != nil && w.player.IsDestroyed() {
		w.player = nil
	}

	w.checkCollisions(ev)
	w.compact()
	w.flushSpawned()
	return nil
}

// Draw draws every object.
func (w *World) Draw(ctx object.DrawContext) error {
	for _, obj := range w.objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) flushSpawned() {
	w.objects = append(w.objects, w.spawned...)
	clear(w.spawned)
	w.spawned = w.spawned[:0]
}

// compact drops objects marked destroyed.
func (w *World) compact() {
	kept := w.objects[:0]
	for _, obj := range w.objects {
		if object.IsDestroyed(obj) {
			continue
		}
		kept = append(kept, obj)
	}
	clear(w.objects[len(kept):])
	w.objects = kept
	if w.player != nil && w.player.IsDestroyed() {
		w.player = nil
	}
}

func (w *World) release(obj object.Object) {
	if p, ok := obj.(*object.Particle); ok {
		p.Release()
	}
}

func (w *World) releaseAll(objs []object.Object) {
	for _, obj := range objs {
		w.release(obj)
	}
}
