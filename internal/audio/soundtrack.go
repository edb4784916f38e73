// Package audio plays the background soundtrack through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Soundtrack is the in-game music: the classic two-note heartbeat. It
// satisfies session.Soundtrack. Play and Stop are no-ops until Init
// succeeds, so a machine without an audio device still runs the game.
type Soundtrack struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	beat        *Heartbeat
	ctrl        *beep.Ctrl
	initialized bool
}

// NewSoundtrack creates a silent soundtrack. Call Init to open the speaker.
func NewSoundtrack() *Soundtrack {
	beat := NewHeartbeat(sampleRate)
	return &Soundtrack{
		mixer: &beep.Mixer{},
		beat:  beat,
		ctrl:  &beep.Ctrl{Streamer: beat, Paused: true},
	}
}

// Init opens the speaker and starts the (paused) mixer.
func (s *Soundtrack) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	s.mixer.Add(s.ctrl)
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play restarts the heartbeat from its first note.
func (s *Soundtrack) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.beat.Reset()
	s.ctrl.Paused = false
	speaker.Unlock()
}

// Stop pauses the heartbeat.
func (s *Soundtrack) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

// Close stops all sound and releases the speaker.
func (s *Soundtrack) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// Heartbeat generates an endless low thump alternating between two pitches.
type Heartbeat struct {
	sr       beep.SampleRate
	pos      int
	interval int // Samples between thumps
	length   int // Samples each thump rings for
}

// heartbeatNotes are the two alternating pitches in Hz.
var heartbeatNotes = [2]float64{55, 49}

// NewHeartbeat creates a heartbeat generator at sample rate sr.
func NewHeartbeat(sr beep.SampleRate) *Heartbeat {
	return &Heartbeat{
		sr:       sr,
		interval: sr.N(time.Millisecond * 500),
		length:   sr.N(time.Millisecond * 120),
	}
}

// Reset rewinds to the first note.
func (h *Heartbeat) Reset() {
	h.pos = 0
}

// Stream implements beep.Streamer. It never runs out.
func (h *Heartbeat) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beat := h.pos / h.interval
		offset := h.pos % h.interval

		sample := 0.0
		if offset < h.length {
			env := 1.0 - float64(offset)/float64(h.length)
			t := float64(offset) / float64(h.sr)
			sample = 0.5 * env * math.Sin(2*math.Pi*heartbeatNotes[beat%2]*t)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		h.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (h *Heartbeat) Err() error {
	return nil
}
