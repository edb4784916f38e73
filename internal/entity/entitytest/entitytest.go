// Package entitytest provides in-memory fakes for code that depends on
// entity.Population and on a random source.
package entitytest

import (
	"math/rand"

	"github.com/tomz197/asteroids-arcade/internal/entity"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Spawned records one Create call.
type Spawned struct {
	Kind  entity.Kind
	Pos   physics.Point
	Attrs entity.Attributes
}

// Population is a fake entity.Population that keeps a flat list of entities.
type Population struct {
	Entities []Spawned
	Clears   int
}

var _ entity.Population = (*Population)(nil)

// Count implements entity.Population.
func (p *Population) Count(kind entity.Kind) int {
	n := 0
	for _, e := range p.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Create implements entity.Population.
func (p *Population) Create(kind entity.Kind, pos physics.Point, attrs entity.Attributes) {
	p.Entities = append(p.Entities, Spawned{Kind: kind, Pos: pos, Attrs: attrs})
}

// Clear implements entity.Population.
func (p *Population) Clear() {
	p.Entities = p.Entities[:0]
	p.Clears++
}

// PlayerPosition implements entity.Population.
func (p *Population) PlayerPosition() (physics.Point, bool) {
	for _, e := range p.Entities {
		if e.Kind == entity.Player {
			return e.Pos, true
		}
	}
	return physics.Point{}, false
}

// Of returns every entity of the given kind, in creation order.
func (p *Population) Of(kind entity.Kind) []Spawned {
	var out []Spawned
	for _, e := range p.Entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Remove drops every entity of the given kind, as the simulation would on
// destruction.
func (p *Population) Remove(kind entity.Kind) {
	kept := p.Entities[:0]
	for _, e := range p.Entities {
		if e.Kind != kind {
			kept = append(kept, e)
		}
	}
	p.Entities = kept
}

// Rand is a scripted random source. Queued values are returned first; once a
// queue runs dry the fallback generator takes over.
type Rand struct {
	Ints     []int
	Floats   []float64
	Fallback *rand.Rand
}

// NewRand returns a Rand whose fallback is seeded with seed.
func NewRand(seed int64) *Rand {
	return &Rand{Fallback: rand.New(rand.NewSource(seed))}
}

// Intn returns the next queued int (reduced modulo n) or a fallback draw.
func (r *Rand) Intn(n int) int {
	if len(r.Ints) > 0 {
		v := r.Ints[0]
		r.Ints = r.Ints[1:]
		return v % n
	}
	return r.Fallback.Intn(n)
}

// Float64 returns the next queued float or a fallback draw.
func (r *Rand) Float64() float64 {
	if len(r.Floats) > 0 {
		v := r.Floats[0]
		r.Floats = r.Floats[1:]
		return v
	}
	return r.Fallback.Float64()
}
