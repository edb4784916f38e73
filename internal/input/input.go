// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit  bool
	Left  bool // Rotate counter-clockwise
	Right bool // Rotate clockwise
	Up    bool // Thrust
	Space bool // Fire
	Enter bool // Start signal on the title and game-over screens
}

// StartRequested reports whether the start key is held (session.StartSignal).
func (in Input) StartRequested() bool {
	return in.Enter
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	space time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	return s.readAt(time.Now())
}

func (s *Stream) readAt(now time.Time) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader is gone (client hung up); treat as quit.
				s.state.quit = now
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	parse(&s.state, buf, now)

	return Input{
		Quit:  now.Sub(s.state.quit) < keyHoldDuration,
		Left:  now.Sub(s.state.left) < keyHoldDuration,
		Right: now.Sub(s.state.right) < keyHoldDuration,
		Up:    now.Sub(s.state.up) < keyHoldDuration,
		Space: now.Sub(s.state.space) < keyHoldDuration,
		Enter: now.Sub(s.state.enter) < keyHoldDuration,
	}
}

// parse updates key state timestamps from a batch of raw bytes.
func parse(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				state.up = now
				i += 2
				continue
			case 'C': // Right arrow
				state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(state, b, now)
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
