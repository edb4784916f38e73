package config

import "time"

// Play field - every entity lives in these logical units.
// Front ends scale it to the terminal or window.
const (
	FieldWidth  = 900
	FieldHeight = 700
)

// Waves
const (
	BaseLargeHazards   = 5    // Large hazards in wave 1
	WaveBudgetFactor   = 1.25 // Growth per wave
	MinLargeHazards    = 3    // Floor after rounding
	NextWaveDelayTicks = 45   // Idle ticks between a cleared field and the next wave
)

// Hostiles
const (
	HostileSpawnChance   = 0.15
	HostileKindThreshold = 4    // First wave where a small saucer may appear
	HostileMaxAccuracy   = 0.95 // Accuracy cap for every wave
	HostileMargin        = 40   // Vertical margin from top/bottom for the entry point
)

// Placement
const (
	SafeSpawnRadius   = 140 // Minimum distance from the player for new entities
	PlacementAttempts = 80  // Random samples before falling back to the last one
)

// Player
const (
	InitialLives      = 3
	RespawnDelayTicks = 45
)

// Scoring
const (
	ScoreLargeHazard  = 20
	ScoreMediumHazard = 50
	ScoreSmallHazard  = 100
	ScoreLargeSaucer  = 200
	ScoreSmallSaucer  = 1000
)

// Tick rate - one session tick per frame.
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Banner font sizes (in field units) used to lay out centered messages.
const (
	TitleFontSize   = 42
	MessageFontSize = 36
)

// Runtime environment variables for the binaries.
const (
	EnvAudio = "ARCADE_AUDIO"
	EnvSeed  = "ARCADE_SEED"
)

// SSH sessions on the title or game-over screen are dropped after this
// long without input.
const IdleTimeout = 2 * time.Minute
