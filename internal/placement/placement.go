// Package placement finds spawn positions that keep a minimum distance
// from the player.
//
// The search is bounded and never fails: when no safe point turns up the
// last sampled point is used anyway, so spawning never stalls the game.
package placement

import (
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/entity"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Rand is the random source used for sampling. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Exclusion is a circle new entities should stay out of.
// An inactive exclusion (no player) permits every position.
type Exclusion struct {
	Center physics.Point
	Radius float64
	Active bool
}

// AroundPlayer builds an exclusion zone of the given radius centered on the
// player, or an inactive one if the population has no player.
func AroundPlayer(pop entity.Population, radius float64) Exclusion {
	pos, ok := pop.PlayerPosition()
	return Exclusion{Center: pos, Radius: radius, Active: ok}
}

// Permits reports whether p is at least Radius away from Center.
func (e Exclusion) Permits(p physics.Point) bool {
	if !e.Active {
		return true
	}
	return physics.DistanceSquared(p.X, p.Y, e.Center.X, e.Center.Y) >= e.Radius*e.Radius
}

// Oracle samples spawn positions.
type Oracle struct {
	rng      Rand
	attempts int
}

// NewOracle creates an oracle using rng and the default attempt budget.
func NewOracle(rng Rand) *Oracle {
	return &Oracle{rng: rng, attempts: config.PlacementAttempts}
}

// WithAttempts returns a copy of the oracle with a different sample budget.
func (o *Oracle) WithAttempts(n int) *Oracle {
	return &Oracle{rng: o.rng, attempts: max(0, n)}
}

// FindSafePosition samples uniformly inside bounds until a point outside the
// exclusion turns up. If the budget runs out the last sample is returned;
// with no budget at all the seed is returned.
func (o *Oracle) FindSafePosition(seed physics.Point, ex Exclusion, bounds physics.Bounds) physics.Point {
	best := seed
	for i := 0; i < o.attempts; i++ {
		p := o.sample(bounds)
		if ex.Permits(p) {
			return p
		}
		best = p
	}
	return best
}

// EdgePosition prefers the field edges: one candidate on each edge plus one
// interior point, checked in that order. If none is safe it falls back to
// FindSafePosition seeded with a fresh interior point.
func (o *Oracle) EdgePosition(ex Exclusion, bounds physics.Bounds) physics.Point {
	w, h := bounds.Width, bounds.Height
	// All candidates are drawn before any is checked so a seeded run
	// consumes the source in a fixed order.
	candidates := [...]physics.Point{
		{X: float64(o.rng.Intn(w)), Y: 0},
		{X: float64(o.rng.Intn(w)), Y: float64(h - 1)},
		{X: 0, Y: float64(o.rng.Intn(h))},
		{X: float64(w - 1), Y: float64(o.rng.Intn(h))},
		o.sample(bounds),
	}
	for _, c := range candidates {
		if ex.Permits(c) {
			return c
		}
	}
	return o.FindSafePosition(o.sample(bounds), ex, bounds)
}

func (o *Oracle) sample(bounds physics.Bounds) physics.Point {
	x := o.rng.Intn(bounds.Width)
	y := o.rng.Intn(bounds.Height)
	return physics.Point{X: float64(x), Y: float64(y)}
}
