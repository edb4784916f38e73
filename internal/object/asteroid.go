package object

import (
	"math"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/entity"
)

// Size properties for each hazard tier, in field units.
var asteroidRadii = map[entity.HazardSize]float64{
	entity.Small:  12.0,
	entity.Medium: 22.0,
	entity.Large:  40.0,
}

var asteroidSpeeds = map[entity.HazardSize]float64{
	entity.Small:  120.0,
	entity.Medium: 80.0,
	entity.Large:  50.0,
}

var asteroidScores = map[entity.HazardSize]int{
	entity.Small:  config.ScoreSmallHazard,
	entity.Medium: config.ScoreMediumHazard,
	entity.Large:  config.ScoreLargeHazard,
}

// Asteroid is a destructible space rock, the hazard of the game.
type Asteroid struct {
	X, Y          float64           // Position (center)
	VX, VY        float64           // Velocity, units per second
	Angle         float64           // Current rotation angle
	RotationSpeed float64           // Rotation speed (radians/sec)
	Size          entity.HazardSize // Size tier
	Radius        float64           // Collision/draw radius
	Vertices      []float64         // Vertex distances from center (for irregular shape)
	Destroyed     bool              // Mark for removal
}

// NewAsteroid creates an asteroid at position (x,y) with the given size.
// Direction is random if angle is < 0.
func NewAsteroid(rng Rand, x, y float64, size entity.HazardSize, angle float64) *Asteroid {
	radius := asteroidRadii[size]
	speed := asteroidSpeeds[size]

	if angle < 0 {
		angle = rng.Float64() * 2 * math.Pi
	}

	// Irregular polygon, radius varied by ±30%
	numVerts := 8 + rng.Intn(5)
	vertices := make([]float64, numVerts)
	for i := range vertices {
		vertices[i] = radius * (0.7 + rng.Float64()*0.6)
	}

	return &Asteroid{
		X:             x,
		Y:             y,
		VX:            math.Cos(angle) * speed,
		VY:            math.Sin(angle) * speed,
		Angle:         rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64() - 0.5) * 2.0,
		Size:          size,
		Radius:        radius,
		Vertices:      vertices,
	}
}

// Score returns the points awarded for destroying the asteroid.
func (a *Asteroid) Score() int {
	return asteroidScores[a.Size]
}

// Split returns the fragments left behind when the asteroid is destroyed:
// two of the next smaller tier, or none for the smallest.
func (a *Asteroid) Split(rng Rand) []*Asteroid {
	if a.Size <= entity.Small {
		return nil
	}
	next := a.Size - 1
	return []*Asteroid{
		NewAsteroid(rng, a.X, a.Y, next, -1),
		NewAsteroid(rng, a.X, a.Y, next, -1),
	}
}

// Update moves the asteroid and handles rotation.
func (a *Asteroid) Update(ctx UpdateContext) (bool, error) {
	if a.Destroyed {
		return true, nil
	}

	dt := ctx.Delta.Seconds()
	a.Angle += a.RotationSpeed * dt
	a.X += a.VX * dt
	a.Y += a.VY * dt
	ctx.Bounds.Wrap(&a.X, &a.Y)

	return false, nil
}

// Draw renders the asteroid as an irregular polygon.
func (a *Asteroid) Draw(ctx DrawContext) error {
	n := len(a.Vertices)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, dist := range a.Vertices {
		vertAngle := a.Angle + float64(i)*2*math.Pi/float64(n)
		xs[i] = a.X + math.Cos(vertAngle)*dist
		ys[i] = a.Y + math.Sin(vertAngle)*dist
	}
	drawPolygon(ctx.Plot, xs, ys)
	return nil
}

// MarkDestroyed marks the asteroid for removal (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.Destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction (implements Destructible).
func (a *Asteroid) IsDestroyed() bool {
	return a.Destroyed
}

// GetPosition returns the asteroid's center position.
func (a *Asteroid) GetPosition() (float64, float64) {
	return a.X, a.Y
}

// GetRadius returns the asteroid's collision radius.
func (a *Asteroid) GetRadius() float64 {
	return a.Radius
}
