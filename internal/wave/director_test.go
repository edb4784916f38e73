package wave

import (
	"math"
	"testing"

	"github.com/tomz197/asteroids-arcade/internal/entity"
	"github.com/tomz197/asteroids-arcade/internal/entity/entitytest"
	"github.com/tomz197/asteroids-arcade/internal/physics"
	"github.com/tomz197/asteroids-arcade/internal/placement"
)

var field = physics.Bounds{Width: 900, Height: 700}

func newDirector(pop entity.Population, rng *entitytest.Rand) *Director {
	return NewDirector(pop, placement.NewOracle(rng), rng, field)
}

func TestHazardCount(t *testing.T) {
	tests := []struct {
		wave int
		want int
	}{
		{1, 5},
		{2, 6},
		{3, 8},
		{4, 10},
		{5, 12},
		{6, 15},
		{10, 37},
	}
	for _, tt := range tests {
		if got := HazardCount(tt.wave); got != tt.want {
			t.Errorf("HazardCount(%d) = %d, want %d", tt.wave, got, tt.want)
		}
	}
}

func TestHazardCountMatchesFormula(t *testing.T) {
	for w := 1; w <= 40; w++ {
		raw := float32(5) * float32(math.Pow(1.25, float64(w-1)))
		want := int(math.Max(3, math.Floor(float64(raw+0.5))))
		if got := HazardCount(w); got != want {
			t.Fatalf("HazardCount(%d) = %d, want %d", w, got, want)
		}
	}
}

func TestHostileAccuracyCapped(t *testing.T) {
	for w := 0; w <= 50; w++ {
		for _, kind := range []entity.HostileKind{entity.LargeSaucer, entity.SmallSaucer} {
			acc := HostileAccuracy(kind, w)
			if acc < 0 || acc > 0.95 {
				t.Fatalf("HostileAccuracy(%v, %d) = %v, outside [0, 0.95]", kind, w, acc)
			}
		}
	}
	if got := HostileAccuracy(entity.SmallSaucer, 2); math.Abs(got-0.85) > 1e-9 {
		t.Errorf("small saucer wave 2 accuracy = %v, want 0.85", got)
	}
	if got := HostileAccuracy(entity.LargeSaucer, 5); math.Abs(got-0.65) > 1e-9 {
		t.Errorf("large saucer wave 5 accuracy = %v, want 0.65", got)
	}
	if got := HostileAccuracy(entity.SmallSaucer, 4); got != 0.95 {
		t.Errorf("small saucer wave 4 accuracy = %v, want capped 0.95", got)
	}
}

func TestSpawnNextPopulatesWave(t *testing.T) {
	pop := &entitytest.Population{}
	pop.Create(entity.Player, physics.Point{X: 450, Y: 350}, entity.Attributes{})
	rng := entitytest.NewRand(3)
	rng.Floats = []float64{0.99} // no saucer
	d := newDirector(pop, rng)

	r := d.SpawnNext()
	if r.Wave != 1 || d.Wave() != 1 {
		t.Fatalf("wave = %d (report %d), want 1", d.Wave(), r.Wave)
	}
	if r.Hazards != 5 || pop.Count(entity.Hazard) != 5 {
		t.Fatalf("hazards = %d (report %d), want 5", pop.Count(entity.Hazard), r.Hazards)
	}
	if r.Hostile || pop.Count(entity.Hostile) != 0 {
		t.Fatalf("no saucer expected when the roll misses")
	}
	if d.Countdown() != 45 {
		t.Fatalf("countdown = %d, want 45", d.Countdown())
	}
	for _, h := range pop.Of(entity.Hazard) {
		if h.Attrs.Size != entity.Large {
			t.Errorf("hazard size = %v, want large", h.Attrs.Size)
		}
		if physics.Distance(h.Pos.X, h.Pos.Y, 450, 350) < 140 {
			t.Errorf("hazard at %v is inside the safe radius", h.Pos)
		}
	}
}

func TestSpawnNextLargeSaucerBeforeThreshold(t *testing.T) {
	pop := &entitytest.Population{}
	rng := entitytest.NewRand(1)
	rng.Floats = []float64{0.10}
	d := newDirector(pop, rng)

	// Burn the hazard draws with the fallback source, then script the saucer.
	d.wave = 2
	for i := 0; i < HazardCount(3); i++ {
		// 5 edge draws + nothing else when no player exists
		rng.Ints = append(rng.Ints, 1, 1, 1, 1, 1, 1)
	}
	rng.Ints = append(rng.Ints, 100, 0) // y offset, side coin -> right

	r := d.SpawnNext()
	if !r.Hostile || r.Saucer != entity.LargeSaucer {
		t.Fatalf("report = %+v, want large saucer", r)
	}
	if r.Entry != (physics.Point{X: 901, Y: 140}) {
		t.Fatalf("entry = %v, want (901, 140)", r.Entry)
	}
	if math.Abs(r.Accuracy-(0.30+0.07*3)) > 1e-9 {
		t.Fatalf("accuracy = %v", r.Accuracy)
	}
	got := pop.Of(entity.Hostile)
	if len(got) != 1 || got[0].Attrs.Saucer != entity.LargeSaucer {
		t.Fatalf("population saucers = %+v", got)
	}
}

func TestSpawnNextSmallSaucerFromThreshold(t *testing.T) {
	pop := &entitytest.Population{}
	rng := entitytest.NewRand(1)
	rng.Floats = []float64{0.0}
	d := newDirector(pop, rng)
	d.wave = 3
	for i := 0; i < HazardCount(4); i++ {
		rng.Ints = append(rng.Ints, 1, 1, 1, 1, 1, 1)
	}
	rng.Ints = append(rng.Ints, 1, 0, 1) // kind coin -> small, y offset 0, side -> left

	r := d.SpawnNext()
	if !r.Hostile || r.Saucer != entity.SmallSaucer {
		t.Fatalf("report = %+v, want small saucer", r)
	}
	if r.Accuracy != 0.95 {
		t.Fatalf("accuracy = %v, want 0.95", r.Accuracy)
	}
	if r.Entry != (physics.Point{X: -1, Y: 40}) {
		t.Fatalf("entry = %v, want (-1, 40)", r.Entry)
	}
}

func TestSaucerEntryStaysInsideMargins(t *testing.T) {
	pop := &entitytest.Population{}
	rng := entitytest.NewRand(11)
	d := newDirector(pop, rng)
	for i := 0; i < 200; i++ {
		rng.Floats = []float64{0}
		r := d.SpawnNext()
		if !r.Hostile {
			t.Fatalf("wave %d: roll 0 must spawn a saucer", r.Wave)
		}
		if r.Entry.Y < 40 || r.Entry.Y >= 660 {
			t.Fatalf("wave %d: entry y %v outside margins", r.Wave, r.Entry.Y)
		}
		if r.Entry.X != -1 && r.Entry.X != 901 {
			t.Fatalf("wave %d: entry x %v not off-field", r.Wave, r.Entry.X)
		}
		pop.Clear()
	}
}

func TestTickCountsDownThenSpawns(t *testing.T) {
	pop := &entitytest.Population{}
	rng := entitytest.NewRand(5)
	rng.Floats = []float64{0.99}
	d := newDirector(pop, rng)

	if _, spawned := d.Tick(); spawned {
		t.Fatalf("Tick with no countdown must not spawn")
	}
	if d.Wave() != 0 {
		t.Fatalf("wave advanced without a countdown")
	}

	d.SpawnNext()
	pop.Remove(entity.Hazard)
	rng.Floats = []float64{0.99, 0.99}
	for i := 1; i < 45; i++ {
		if _, spawned := d.Tick(); spawned {
			t.Fatalf("spawned early on idle tick %d", i)
		}
		if d.Countdown() != 45-i {
			t.Fatalf("countdown = %d after %d ticks", d.Countdown(), i)
		}
	}
	r, spawned := d.Tick()
	if !spawned || r.Wave != 2 || pop.Count(entity.Hazard) != 6 {
		t.Fatalf("tick 45: spawned=%v report=%+v hazards=%d", spawned, r, pop.Count(entity.Hazard))
	}
	if d.Countdown() != 45 {
		t.Fatalf("countdown re-armed to %d, want 45", d.Countdown())
	}
}

func TestReset(t *testing.T) {
	pop := &entitytest.Population{}
	d := newDirector(pop, entitytest.NewRand(9))
	d.SpawnNext()
	d.Reset()
	if d.Wave() != 0 || d.Countdown() != 0 {
		t.Fatalf("after Reset wave=%d countdown=%d", d.Wave(), d.Countdown())
	}
}
