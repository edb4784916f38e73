package lives

import (
	"testing"

	"github.com/tomz197/asteroids-arcade/internal/entity"
	"github.com/tomz197/asteroids-arcade/internal/entity/entitytest"
	"github.com/tomz197/asteroids-arcade/internal/physics"
	"github.com/tomz197/asteroids-arcade/internal/placement"
)

var field = physics.Bounds{Width: 900, Height: 700}

func newTracker(pop *entitytest.Population) *Tracker {
	return NewTracker(pop, placement.NewOracle(entitytest.NewRand(42)), field)
}

func TestLoseLifeSequence(t *testing.T) {
	tr := newTracker(&entitytest.Population{})
	tests := []struct {
		want      Outcome
		lives     int
		countdown int
	}{
		{Respawning, 2, 45},
		{Respawning, 1, 45},
		{GameOver, 0, 0},
		{NoOp, 0, 0},
	}
	for i, tt := range tests {
		got := tr.LoseLife()
		if got != tt.want || tr.Lives() != tt.lives || tr.Countdown() != tt.countdown {
			t.Fatalf("call %d: got %v lives=%d countdown=%d, want %v lives=%d countdown=%d",
				i+1, got, tr.Lives(), tr.Countdown(), tt.want, tt.lives, tt.countdown)
		}
	}
}

func TestLoseLifeAtZeroLeavesCountdownAlone(t *testing.T) {
	tr := newTracker(&entitytest.Population{})
	tr.lives = 0
	tr.countdown = 17
	if got := tr.LoseLife(); got != NoOp {
		t.Fatalf("LoseLife() = %v, want NoOp", got)
	}
	if tr.Lives() != 0 || tr.Countdown() != 17 {
		t.Fatalf("lives=%d countdown=%d, want 0 and 17", tr.Lives(), tr.Countdown())
	}
}

func TestLastLifeCancelsPendingRespawn(t *testing.T) {
	tr := newTracker(&entitytest.Population{})
	tr.LoseLife()
	tr.LoseLife()
	if tr.Countdown() != 45 {
		t.Fatalf("countdown = %d, want 45", tr.Countdown())
	}
	tr.LoseLife()
	if tr.Countdown() != 0 {
		t.Fatalf("countdown = %d after game over, want 0", tr.Countdown())
	}
}

func TestCountdownDropsOnePerTickThenSpawnsOnce(t *testing.T) {
	pop := &entitytest.Population{}
	tr := newTracker(pop)
	tr.LoseLife()

	for want := 44; want > 0; want-- {
		if tr.Tick() {
			t.Fatalf("spawned with %d ticks to go", want+1)
		}
		if tr.Countdown() != want {
			t.Fatalf("countdown = %d, want %d", tr.Countdown(), want)
		}
	}
	if !tr.Tick() {
		t.Fatalf("player not spawned when countdown hit zero")
	}
	if pop.Count(entity.Player) != 1 {
		t.Fatalf("players = %d, want 1", pop.Count(entity.Player))
	}

	// Edge-triggered: later ticks must not spawn again even with no player.
	pop.Remove(entity.Player)
	for i := 0; i < 10; i++ {
		if tr.Tick() {
			t.Fatalf("spawned again on tick %d after expiry", i)
		}
	}
	if pop.Count(entity.Player) != 0 {
		t.Fatalf("unexpected respawn")
	}
}

func TestTickSkipsSpawnWhenPlayerPresent(t *testing.T) {
	pop := &entitytest.Population{}
	tr := newTracker(pop)
	tr.SpawnPlayer()
	tr.LoseLife()
	for i := 0; i < 45; i++ {
		if tr.Tick() {
			t.Fatalf("spawned a second player")
		}
	}
	if pop.Count(entity.Player) != 1 {
		t.Fatalf("players = %d, want 1", pop.Count(entity.Player))
	}
}

func TestSpawnPlayerKeepsAwayFromExistingPlayer(t *testing.T) {
	pop := &entitytest.Population{}
	pop.Create(entity.Player, physics.Point{X: 450, Y: 350}, entity.Attributes{})
	tr := newTracker(pop)
	for i := 0; i < 50; i++ {
		p := tr.SpawnPlayer()
		pop.Remove(entity.Player)
		pop.Create(entity.Player, physics.Point{X: 450, Y: 350}, entity.Attributes{})
		if physics.Distance(p.X, p.Y, 450, 350) < 140 {
			t.Fatalf("spawned at %v, inside the safe radius", p)
		}
	}
}

func TestReset(t *testing.T) {
	tr := newTracker(&entitytest.Population{})
	tr.LoseLife()
	tr.Reset()
	if tr.Lives() != 3 || tr.Countdown() != 0 {
		t.Fatalf("after Reset lives=%d countdown=%d", tr.Lives(), tr.Countdown())
	}
}
