// Package wave decides how many hazards each wave brings, when a saucer joins
// it, and how long the field stays empty between waves.
package wave

import (
	"math"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/entity"
	"github.com/tomz197/asteroids-arcade/internal/physics"
	"github.com/tomz197/asteroids-arcade/internal/placement"
)

// Rand is the random source for hostile rolls and positions.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Report describes one wave-spawn event.
type Report struct {
	Wave     int
	Hazards  int
	Hostile  bool
	Saucer   entity.HostileKind
	Accuracy float64
	Entry    physics.Point // Saucer entry point, off-field horizontally
}

// HazardCount returns the number of large hazards for a wave: a geometric
// budget of BaseLargeHazards growing by WaveBudgetFactor per wave, rounded
// half up and floored at MinLargeHazards. The budget is computed in float32
// so very late waves round exactly as the arcade cabinet did.
func HazardCount(wave int) int {
	growth := float32(math.Pow(config.WaveBudgetFactor, float64(wave-1)))
	raw := float32(config.BaseLargeHazards) * growth
	budget := max(1, int(math.Floor(float64(raw+0.5))))
	return max(config.MinLargeHazards, budget)
}

// HostileAccuracy returns the aim accuracy of a saucer of the given kind on
// the given wave, within [0, HostileMaxAccuracy].
func HostileAccuracy(kind entity.HostileKind, wave int) float64 {
	var acc float64
	if kind == entity.SmallSaucer {
		acc = 0.65 + 0.10*float64(wave)
	} else {
		acc = 0.30 + 0.07*float64(wave)
	}
	return math.Max(0, math.Min(config.HostileMaxAccuracy, acc))
}

// Director tracks the wave counter and the inter-wave countdown, and spawns
// waves into the population.
type Director struct {
	pop       entity.Population
	oracle    *placement.Oracle
	rng       Rand
	bounds    physics.Bounds
	wave      int
	countdown int
}

// NewDirector creates a director spawning into pop within bounds.
func NewDirector(pop entity.Population, oracle *placement.Oracle, rng Rand, bounds physics.Bounds) *Director {
	return &Director{
		pop:    pop,
		oracle: oracle,
		rng:    rng,
		bounds: bounds,
	}
}

// Wave returns the index of the last spawned wave (0 before the first).
func (d *Director) Wave() int {
	return d.wave
}

// Countdown returns the remaining idle ticks before the next wave.
func (d *Director) Countdown() int {
	return d.countdown
}

// Reset returns the director to wave 0 with no countdown running.
func (d *Director) Reset() {
	d.wave = 0
	d.countdown = 0
}

// Tick advances the inter-wave countdown. The caller invokes it only on ticks
// where the field is clear and no respawn is pending. When the countdown
// reaches exactly zero the next wave spawns; a countdown already at zero
// does nothing.
func (d *Director) Tick() (Report, bool) {
	if d.countdown <= 0 {
		return Report{}, false
	}
	d.countdown--
	if d.countdown != 0 {
		return Report{}, false
	}
	return d.SpawnNext(), true
}

// SpawnNext advances the wave counter, fills the field with large hazards
// away from the player, arms the inter-wave countdown and rolls for a saucer.
func (d *Director) SpawnNext() Report {
	d.wave++
	r := Report{Wave: d.wave, Hazards: HazardCount(d.wave)}

	for i := 0; i < r.Hazards; i++ {
		// Re-read the player each time; the population may move it between calls.
		ex := placement.AroundPlayer(d.pop, config.SafeSpawnRadius)
		pos := d.oracle.EdgePosition(ex, d.bounds)
		d.pop.Create(entity.Hazard, pos, entity.Attributes{Size: entity.Large})
	}

	d.countdown = config.NextWaveDelayTicks

	if d.rng.Float64() < config.HostileSpawnChance {
		d.spawnHostile(&r)
	}
	return r
}

func (d *Director) spawnHostile(r *Report) {
	kind := entity.LargeSaucer
	if d.wave >= config.HostileKindThreshold && d.rng.Intn(2) == 1 {
		kind = entity.SmallSaucer
	}
	acc := HostileAccuracy(kind, d.wave)

	y := config.HostileMargin + d.rng.Intn(d.bounds.Height-2*config.HostileMargin)
	x := d.bounds.Width + 1
	if d.rng.Intn(2) == 1 {
		x = -1
	}
	entry := physics.Point{X: float64(x), Y: float64(y)}
	d.pop.Create(entity.Hostile, entry, entity.Attributes{Saucer: kind, Accuracy: acc})

	r.Hostile = true
	r.Saucer = kind
	r.Accuracy = acc
	r.Entry = entry
}
