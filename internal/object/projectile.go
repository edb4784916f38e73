package object

import (
	"math"
)

// Owner identifies who fired a projectile.
type Owner int

const (
	FromPlayer Owner = iota
	FromSaucer
)

// Projectile is a bullet fired by the player or a saucer.
type Projectile struct {
	X, Y      float64 // Position
	VX, VY    float64 // Velocity
	Lifetime  float64 // Seconds remaining before removal
	Owner     Owner   // Who fired it
	destroyed bool    // Marked for destruction
}

// ProjectileSpeed is the base speed of projectiles.
const ProjectileSpeed = 480.0

// ProjectileLifetime is how long projectiles last before disappearing.
const ProjectileLifetime = 1.1

// ProjectileRadius is the collision radius of a projectile.
const ProjectileRadius = 2.0

// NewProjectile creates a projectile at position (x,y) traveling in direction angle.
// The projectile inherits the shooter's velocity plus its own speed.
func NewProjectile(x, y, angle, shooterVX, shooterVY float64, owner Owner) *Projectile {
	return &Projectile{
		X:        x,
		Y:        y,
		VX:       shooterVX + math.Cos(angle)*ProjectileSpeed,
		VY:       shooterVY + math.Sin(angle)*ProjectileSpeed,
		Lifetime: ProjectileLifetime,
		Owner:    owner,
	}
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
	p.Lifetime = 0
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed || p.Lifetime <= 0
}

// Update moves the projectile and checks lifetime.
func (p *Projectile) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true, nil
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt
	ctx.Bounds.Wrap(&p.X, &p.Y)

	return false, nil
}

// Draw renders the projectile.
func (p *Projectile) Draw(ctx DrawContext) error {
	ctx.Plot.Dot(p.X, p.Y)
	return nil
}

// GetPosition returns the projectile's position.
func (p *Projectile) GetPosition() (float64, float64) {
	return p.X, p.Y
}

// GetRadius returns the projectile's collision radius.
func (p *Projectile) GetRadius() float64 {
	return ProjectileRadius
}
