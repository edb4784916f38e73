// Package session drives one game from the title screen through play to
// game over. It owns the score and composes the wave director, the life
// tracker and the HUD presenter; entities themselves live behind
// entity.Population.
package session

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/entity"
	"github.com/tomz197/asteroids-arcade/internal/hud"
	"github.com/tomz197/asteroids-arcade/internal/lives"
	"github.com/tomz197/asteroids-arcade/internal/physics"
	"github.com/tomz197/asteroids-arcade/internal/placement"
	"github.com/tomz197/asteroids-arcade/internal/wave"
)

// Options configures a Session. Zero values get sensible defaults.
type Options struct {
	Rand       wave.Rand      // Random source for placement and waves (time-seeded if nil)
	Surface    hud.Surface    // Where HUD text goes (a private Board if nil)
	Soundtrack Soundtrack     // Background music (silent if nil)
	Logger     *log.Logger    // Debug/info logging (discarded if nil)
	Bounds     physics.Bounds // Play field (config.FieldWidth x config.FieldHeight if zero)
}

// Session is the state of one running game. It is not safe for concurrent
// use; the owner calls Tick once per frame.
type Session struct {
	pop        entity.Population
	start      StartSignal
	tracker    *lives.Tracker
	director   *wave.Director
	presenter  *hud.Presenter
	soundtrack Soundtrack
	log        *log.Logger

	state State
	score int
}

// New creates a session on the title screen.
func New(pop entity.Population, start StartSignal, opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Surface == nil {
		opts.Surface = hud.NewBoard()
	}
	if opts.Logger == nil {
		opts.Logger = config.DiscardLogger()
	}
	if opts.Bounds == (physics.Bounds{}) {
		opts.Bounds = physics.Bounds{Width: config.FieldWidth, Height: config.FieldHeight}
	}

	oracle := placement.NewOracle(opts.Rand)
	s := &Session{
		pop:        pop,
		start:      start,
		tracker:    lives.NewTracker(pop, oracle, opts.Bounds),
		director:   wave.NewDirector(pop, oracle, opts.Rand, opts.Bounds),
		presenter:  hud.NewPresenter(opts.Surface, opts.Bounds),
		soundtrack: opts.Soundtrack,
		log:        opts.Logger,
		state:      AwaitingStart,
	}
	s.presenter.ClearHUD()
	s.presenter.ShowCentered(hud.TitleBanner, config.TitleFontSize)
	return s
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.tracker.Lives() }

// Wave returns the current wave index.
func (s *Session) Wave() int { return s.director.Wave() }

// RespawnCountdown returns the ticks left before the player respawns.
func (s *Session) RespawnCountdown() int { return s.tracker.Countdown() }

// NextWaveCountdown returns the idle ticks left before the next wave.
func (s *Session) NextWaveCountdown() int { return s.director.Countdown() }

// Banner returns the centered message currently on screen, or "".
func (s *Session) Banner() string { return s.presenter.Banner() }

// Tick advances the session by one frame.
func (s *Session) Tick() {
	switch s.state {
	case AwaitingStart:
		s.presenter.ShowCentered(hud.TitleBanner, config.TitleFontSize)
		if s.start.StartRequested() {
			s.Start()
		}
	case GameOver:
		s.presenter.ShowCentered(hud.GameOverBanner, config.MessageFontSize)
		if s.start.StartRequested() {
			s.setState(AwaitingStart)
			s.Start()
		}
	case Playing:
		s.tickPlaying()
	}
}

func (s *Session) tickPlaying() {
	s.presenter.DrawHUD(s.score, s.tracker.Lives(), s.director.Wave())

	if s.tracker.Tick() {
		s.presenter.ClearCentered()
		s.log.Debug("player respawned", "lives", s.tracker.Lives())
	}

	if s.pop.Count(entity.Hazard) == 0 && s.tracker.Countdown() == 0 {
		if r, spawned := s.director.Tick(); spawned {
			s.logWave(r)
		}
	}

	if s.tracker.Lives() == 0 && s.pop.Count(entity.Player) == 0 {
		s.endGame()
	}
}

// Start resets the session and begins wave 1. Any pending respawn or
// wave countdown is cancelled.
func (s *Session) Start() {
	s.score = 0
	s.tracker.Reset()
	s.director.Reset()

	s.pop.Clear()
	s.presenter.ClearCentered()

	s.tracker.SpawnPlayer()
	s.logWave(s.director.SpawnNext())

	if s.soundtrack != nil {
		s.soundtrack.Play()
	}
	s.setState(Playing)
}

// AddScore adds points to the score. The score never drops below zero.
func (s *Session) AddScore(points int) {
	s.score = max(0, s.score+points)
}

// LoseLife records the loss of the player's ship. On the last life the
// game-over banner goes up at once, but the session only leaves Playing
// once the player population is empty.
func (s *Session) LoseLife() lives.Outcome {
	out := s.tracker.LoseLife()
	switch out {
	case lives.Respawning:
		s.presenter.ShowCentered(hud.RespawnBanner, config.MessageFontSize)
	case lives.GameOver:
		s.presenter.ShowCentered(hud.GameOverBanner, config.MessageFontSize)
		if s.soundtrack != nil {
			s.soundtrack.Stop()
		}
	}
	s.log.Debug("life lost", "outcome", out, "lives", s.tracker.Lives())
	return out
}

func (s *Session) endGame() {
	if s.soundtrack != nil {
		s.soundtrack.Stop()
	}
	s.presenter.ShowCentered(hud.GameOverBanner, config.MessageFontSize)
	s.log.Info("game over", "score", s.score, "wave", s.director.Wave())
	s.setState(GameOver)
}

func (s *Session) setState(next State) {
	if next == s.state {
		return
	}
	s.log.Debug("state change", "from", s.state, "to", next)
	s.state = next
}

func (s *Session) logWave(r wave.Report) {
	if r.Hostile {
		s.log.Info("wave spawned", "wave", r.Wave, "hazards", r.Hazards,
			"saucer", r.Saucer, "accuracy", r.Accuracy)
		return
	}
	s.log.Info("wave spawned", "wave", r.Wave, "hazards", r.Hazards)
}
