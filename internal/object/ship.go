package object

import (
	"math"
)

// Ship is the player-controlled spaceship.
type Ship struct {
	X, Y   float64 // Position (center of ship)
	VX, VY float64 // Velocity (momentum)
	Angle  float64 // Rotation in radians (0 = pointing right, increases clockwise on screen)

	ThrustPower   float64 // Acceleration when thrusting
	RotationSpeed float64 // Radians per second
	MaxSpeed      float64 // Maximum velocity magnitude
	Drag          float64 // Velocity decay per second (1.0 = no drag, 0.5 = 50% speed loss/sec)
	Size          float64 // Size of the ship triangle, also its collision radius

	// Shooting
	FireRate     float64 // Minimum seconds between shots
	fireCooldown float64 // Time until next shot allowed

	thrusting bool
	destroyed bool
}

// NewShip creates a new spaceship at the given position.
func NewShip(x, y float64) *Ship {
	return &Ship{
		X:             x,
		Y:             y,
		Angle:         -math.Pi / 2, // Start pointing up
		ThrustPower:   260.0,        // Acceleration units per second²
		RotationSpeed: 4.5,          // ~258 degrees per second
		MaxSpeed:      320.0,        // Max speed cap
		Drag:          0.5,          // Lose 50% speed per second when not thrusting
		Size:          14.0,
		FireRate:      0.2,
	}
}

// Update handles rotation, thrust, momentum physics, and shooting.
func (s *Ship) Update(ctx UpdateContext) (bool, error) {
	if s.destroyed {
		return true, nil
	}
	dt := ctx.Delta.Seconds()

	if ctx.Input.Left {
		s.Angle -= s.RotationSpeed * dt
	}
	if ctx.Input.Right {
		s.Angle += s.RotationSpeed * dt
	}

	// Normalize angle to [-π, π]
	for s.Angle > math.Pi {
		s.Angle -= 2 * math.Pi
	}
	for s.Angle < -math.Pi {
		s.Angle += 2 * math.Pi
	}

	s.thrusting = ctx.Input.Up
	if s.thrusting {
		s.VX += math.Cos(s.Angle) * s.ThrustPower * dt
		s.VY += math.Sin(s.Angle) * s.ThrustPower * dt
	} else {
		dragFactor := math.Pow(s.Drag, dt)
		s.VX *= dragFactor
		s.VY *= dragFactor
	}

	speed := math.Hypot(s.VX, s.VY)
	if speed > s.MaxSpeed {
		scale := s.MaxSpeed / speed
		s.VX *= scale
		s.VY *= scale
	}

	s.X += s.VX * dt
	s.Y += s.VY * dt
	ctx.Bounds.Wrap(&s.X, &s.Y)

	s.fireCooldown -= dt
	if ctx.Input.Space && s.fireCooldown <= 0 && ctx.Spawner != nil {
		s.fireCooldown = s.FireRate

		noseX := s.X + math.Cos(s.Angle)*s.Size
		noseY := s.Y + math.Sin(s.Angle)*s.Size
		ctx.Spawner.Spawn(NewProjectile(noseX, noseY, s.Angle, s.VX, s.VY, FromPlayer))
	}

	return false, nil
}

// Draw renders the spaceship as a triangle pointing in the direction of travel.
func (s *Ship) Draw(ctx DrawContext) error {
	// Nose in the direction of Angle, wings ~143° either side
	noseAngle := s.Angle
	leftAngle := s.Angle + 2.5
	rightAngle := s.Angle - 2.5

	xs := []float64{
		s.X + math.Cos(noseAngle)*s.Size,
		s.X + math.Cos(leftAngle)*s.Size*0.8,
		s.X + math.Cos(rightAngle)*s.Size*0.8,
	}
	ys := []float64{
		s.Y + math.Sin(noseAngle)*s.Size,
		s.Y + math.Sin(leftAngle)*s.Size*0.8,
		s.Y + math.Sin(rightAngle)*s.Size*0.8,
	}
	drawPolygon(ctx.Plot, xs, ys)

	if s.thrusting {
		backX := s.X - math.Cos(s.Angle)*s.Size*0.6
		backY := s.Y - math.Sin(s.Angle)*s.Size*0.6
		flameX := s.X - math.Cos(s.Angle)*s.Size*1.3
		flameY := s.Y - math.Sin(s.Angle)*s.Size*1.3
		ctx.Plot.Line(backX, backY, flameX, flameY)
	}
	return nil
}

// MarkDestroyed marks the ship for removal.
func (s *Ship) MarkDestroyed() {
	s.destroyed = true
}

// IsDestroyed returns true if the ship is marked for destruction.
func (s *Ship) IsDestroyed() bool {
	return s.destroyed
}

// GetPosition returns the ship's center position.
func (s *Ship) GetPosition() (float64, float64) {
	return s.X, s.Y
}

// GetRadius returns the ship's collision radius.
func (s *Ship) GetRadius() float64 {
	return s.Size * 0.8
}
