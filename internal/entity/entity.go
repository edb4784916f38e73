// Package entity defines the narrow contract between the session core and
// whatever owns the live entities (the world simulation, or a fake in tests).
package entity

import "github.com/tomz197/asteroids-arcade/internal/physics"

// Kind identifies a population the core can count and create.
type Kind int

const (
	Hazard  Kind = iota // Destructible rocks
	Player              // The player's ship
	Hostile             // Roaming saucers
)

func (k Kind) String() string {
	switch k {
	case Hazard:
		return "hazard"
	case Player:
		return "player"
	case Hostile:
		return "hostile"
	default:
		return "unknown"
	}
}

// HazardSize is the tier of a hazard. Larger tiers split into the next
// smaller one when destroyed.
type HazardSize int

const (
	Small  HazardSize = 1
	Medium HazardSize = 2
	Large  HazardSize = 3
)

func (s HazardSize) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "unknown"
	}
}

// HostileKind distinguishes the two saucer types.
type HostileKind int

const (
	LargeSaucer HostileKind = iota
	SmallSaucer
)

func (k HostileKind) String() string {
	if k == SmallSaucer {
		return "small"
	}
	return "large"
}

// Attributes carries the creation parameters that depend on the kind.
// Size applies to hazards; Saucer and Accuracy apply to hostiles.
type Attributes struct {
	Size     HazardSize
	Saucer   HostileKind
	Accuracy float64
}

// Population is everything the core needs from the entity layer.
type Population interface {
	// Count returns the live population of the given kind.
	Count(kind Kind) int
	// Create instantiates and registers a new entity.
	Create(kind Kind, pos physics.Point, attrs Attributes)
	// Clear removes every managed entity.
	Clear()
	// PlayerPosition returns the player's position, or false if no player exists.
	PlayerPosition() (physics.Point, bool)
}
