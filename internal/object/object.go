// Package object implements the entities that move around the play field:
// hazards, the player's ship, saucers and projectiles.
package object

import (
	"time"

	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Rand is the random source objects draw from. The world hands every object
// the same seeded source, so a seed replays a whole run.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta     time.Duration
	Input     Input
	Bounds    physics.Bounds
	Spawner   Spawner
	Rand      Rand
	Player    physics.Point // Player position, valid only if HasPlayer
	HasPlayer bool
}

// Plotter is the vector drawing primitive a front end provides.
// Coordinates are in field units.
type Plotter interface {
	Line(x0, y0, x1, y1 float64)
	Circle(x, y, r float64)
	Dot(x, y float64)
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Plot Plotter
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object.
	Draw(ctx DrawContext) error
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on next update cycle.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Collider is implemented by objects that take part in collision checks.
type Collider interface {
	GetPosition() (float64, float64)
	GetRadius() float64
}

// IsDestroyed reports whether obj is a Destructible marked for removal.
func IsDestroyed(obj Object) bool {
	d, ok := obj.(Destructible)
	return ok && d.IsDestroyed()
}

// drawPolygon connects points in order and closes the shape.
func drawPolygon(p Plotter, xs, ys []float64) {
	n := len(xs)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p.Line(xs[i], ys[i], xs[j], ys[j])
	}
}
