// Package lives tracks the player's remaining lives and the respawn
// countdown that follows a lost life.
package lives

import (
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/entity"
	"github.com/tomz197/asteroids-arcade/internal/physics"
	"github.com/tomz197/asteroids-arcade/internal/placement"
)

// Outcome is the result of losing a life.
type Outcome int

const (
	NoOp       Outcome = iota // No lives left to lose
	Respawning                // A respawn is scheduled
	GameOver                  // That was the last life
)

func (o Outcome) String() string {
	switch o {
	case NoOp:
		return "noop"
	case Respawning:
		return "respawning"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Tracker owns the life counter and the respawn countdown.
type Tracker struct {
	pop       entity.Population
	oracle    *placement.Oracle
	bounds    physics.Bounds
	lives     int
	countdown int
}

// NewTracker creates a tracker with a full set of lives.
func NewTracker(pop entity.Population, oracle *placement.Oracle, bounds physics.Bounds) *Tracker {
	return &Tracker{
		pop:    pop,
		oracle: oracle,
		bounds: bounds,
		lives:  config.InitialLives,
	}
}

// Lives returns the remaining lives.
func (t *Tracker) Lives() int {
	return t.lives
}

// Countdown returns the ticks left before the player respawns.
func (t *Tracker) Countdown() int {
	return t.countdown
}

// Reset restores the initial lives and cancels any pending respawn.
func (t *Tracker) Reset() {
	t.lives = config.InitialLives
	t.countdown = 0
}

// LoseLife takes one life away. With lives left it schedules a respawn;
// on the last life it cancels any pending respawn. With no lives left it
// changes nothing.
func (t *Tracker) LoseLife() Outcome {
	if t.lives <= 0 {
		return NoOp
	}
	t.lives--
	if t.lives > 0 {
		t.countdown = config.RespawnDelayTicks
		return Respawning
	}
	t.countdown = 0
	return GameOver
}

// Tick runs the respawn countdown down by one. On the tick it reaches zero
// the player is spawned, if lives remain and no player exists. Returns true
// on the tick a player was spawned.
func (t *Tracker) Tick() bool {
	if t.countdown <= 0 {
		return false
	}
	t.countdown--
	if t.countdown != 0 || t.lives <= 0 || t.pop.Count(entity.Player) > 0 {
		return false
	}
	t.SpawnPlayer()
	return true
}

// SpawnPlayer places a new player ship, searching outward from the field
// center for a spot clear of any existing player.
func (t *Tracker) SpawnPlayer() physics.Point {
	ex := placement.AroundPlayer(t.pop, config.SafeSpawnRadius)
	pos := t.oracle.FindSafePosition(t.bounds.Center(), ex, t.bounds)
	t.pop.Create(entity.Player, pos, entity.Attributes{})
	return pos
}
