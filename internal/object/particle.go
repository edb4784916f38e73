package object

import (
	"math"
	"sync"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived explosion fragment. It never collides.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay per 1/60s (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates particles in a circular burst pattern.
func SpawnExplosion(rng Rand, x, y float64, count int, speed, lifetime float64, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// Speed 50% to 150%, lifetime 50% to 100%
		spd := speed * (0.5 + rng.Float64())
		life := lifetime * (0.5 + rng.Float64()*0.5)

		spawner.Spawn(NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life))
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true, nil
	}

	dragFactor := math.Pow(p.Drag, dt*60) // Normalize drag to ~60fps
	p.VX *= dragFactor
	p.VY *= dragFactor

	p.X += p.VX * dt
	p.Y += p.VY * dt
	ctx.Bounds.Wrap(&p.X, &p.Y)

	return false, nil
}

// Draw renders the particle as a single dot.
func (p *Particle) Draw(ctx DrawContext) error {
	// Skip faded particles (< 25% lifetime)
	if p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25 {
		return nil
	}
	ctx.Plot.Dot(p.X, p.Y)
	return nil
}
