package loop

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/hud"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
	"github.com/tomz197/asteroids-arcade/internal/session"
	"github.com/tomz197/asteroids-arcade/internal/wave"
	"github.com/tomz197/asteroids-arcade/internal/world"
)

// GameOptions configures a Game. Zero values get the session defaults.
type GameOptions struct {
	Rand       wave.Rand // Shared by the session and the world (time-seeded if nil)
	Soundtrack session.Soundtrack
	Logger     *log.Logger
}

// Game wires one session to its world and HUD board. Front ends feed it
// input once per frame and draw it afterwards. Each Game is independent.
type Game struct {
	Session *session.Session
	World   *world.World
	Board   *hud.Board

	input input.Input // Input of the frame being ticked
}

// NewGame creates a game on the title screen.
func NewGame(opts GameOptions) *Game {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	bounds := physics.Bounds{Width: config.FieldWidth, Height: config.FieldHeight}
	g := &Game{
		World: world.New(bounds, opts.Rand),
		Board: hud.NewBoard(),
	}
	start := session.StartSignalFunc(func() bool { return g.input.StartRequested() })
	g.Session = session.New(g.World, start, session.Options{
		Rand:       opts.Rand,
		Surface:    g.Board,
		Soundtrack: opts.Soundtrack,
		Logger:     opts.Logger,
		Bounds:     bounds,
	})
	return g
}

// Tick runs one frame: the world moves and resolves collisions, then the
// session reacts to what happened.
func (g *Game) Tick(in input.Input) error {
	g.input = in
	if err := g.World.Step(in, g.Session); err != nil {
		return err
	}
	g.Session.Tick()
	return nil
}

// Draw draws the world through p. HUD text lives on Board.
func (g *Game) Draw(p object.Plotter) error {
	return g.World.Draw(object.DrawContext{Plot: p})
}
