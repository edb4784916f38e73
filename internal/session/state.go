package session

// State is the top-level phase of a session.
type State int

const (
	AwaitingStart State = iota // Title screen, waiting for the start signal
	Playing                    // Active gameplay
	GameOver                   // Out of lives, waiting for a restart
)

func (s State) String() string {
	switch s {
	case AwaitingStart:
		return "awaiting-start"
	case Playing:
		return "playing"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// StartSignal reports whether the player asked to start. It is polled once
// per tick on the title and game-over screens; it is level-triggered, so a
// held signal starts a new game on the first tick it is seen.
type StartSignal interface {
	StartRequested() bool
}

// StartSignalFunc adapts a function to StartSignal.
type StartSignalFunc func() bool

// StartRequested implements StartSignal.
func (f StartSignalFunc) StartRequested() bool {
	return f()
}

// Soundtrack is background music that runs while a game is in progress.
type Soundtrack interface {
	Play()
	Stop()
}
