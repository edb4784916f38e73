package loop

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/entity"
	"github.com/tomz197/asteroids-arcade/internal/hud"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/session"
)

func newTestGame() *Game {
	return NewGame(GameOptions{Rand: rand.New(rand.NewSource(1))})
}

func TestGameStartsOnEnter(t *testing.T) {
	g := newTestGame()
	if err := g.Tick(input.Input{}); err != nil {
		t.Fatal(err)
	}
	if g.Session.State() != session.AwaitingStart {
		t.Fatalf("state = %v, want awaiting-start", g.Session.State())
	}
	if got := g.Board.Text(450, 302); got != "ASTEROIDS" {
		t.Errorf("title line = %q", got)
	}

	g.Tick(input.Input{Enter: true})
	if g.Session.State() != session.Playing {
		t.Fatalf("state = %v, want playing", g.Session.State())
	}
	if got := g.World.Count(entity.Hazard); got != 5 {
		t.Errorf("hazards = %d, want 5", got)
	}
	if got := g.World.Count(entity.Player); got != 1 {
		t.Errorf("players = %d, want 1", got)
	}
	if g.Board.Text(450, 302) != "" {
		t.Error("title banner still shown after start")
	}

	g.Tick(input.Input{})
	if got := g.Board.Text(90, 20); got != "Score: 0" {
		t.Errorf("score line = %q", got)
	}
	if got := g.Board.Text(90, 40); got != "Lives: 3" {
		t.Errorf("lives line = %q", got)
	}
}

func TestGameLosesLifeOnCollision(t *testing.T) {
	g := newTestGame()
	g.Tick(input.Input{Enter: true})

	pos, ok := g.World.PlayerPosition()
	if !ok {
		t.Fatal("no player after start")
	}
	g.World.Create(entity.Hazard, pos, entity.Attributes{Size: entity.Large})

	if err := g.Tick(input.Input{}); err != nil {
		t.Fatal(err)
	}
	if got := g.Session.Lives(); got != 2 {
		t.Errorf("lives = %d, want 2", got)
	}
	if got := g.Session.Banner(); got != hud.RespawnBanner {
		t.Errorf("banner = %q, want %q", got, hud.RespawnBanner)
	}
	if got := g.World.Count(entity.Player); got != 0 {
		t.Errorf("players = %d, want 0 while respawning", got)
	}
}

type countPlotter struct{ calls int }

func (p *countPlotter) Line(x0, y0, x1, y1 float64) { p.calls++ }
func (p *countPlotter) Circle(x, y, r float64)      { p.calls++ }
func (p *countPlotter) Dot(x, y float64)            { p.calls++ }

func TestGameDraw(t *testing.T) {
	g := newTestGame()
	p := &countPlotter{}
	g.Draw(p)
	if p.calls != 0 {
		t.Errorf("title screen drew %d primitives", p.calls)
	}
	g.Tick(input.Input{Enter: true})
	g.Draw(p)
	if p.calls == 0 {
		t.Error("nothing drawn after start")
	}
}

func TestRunQuits(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	go func() {
		time.Sleep(100 * time.Millisecond)
		pw.Write([]byte("q"))
	}()

	var out bytes.Buffer
	err := Run(context.Background(), bufio.NewReader(pr), &out, Options{
		TermSizeFunc: draw.FixedSize(90, 35),
		Rand:         rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("Run returned %v", err)
	}
	s := out.String()
	if !strings.HasPrefix(s, "\033[?25l") {
		t.Error("expected cursor hidden first")
	}
	if !strings.HasSuffix(s, "\033[?25h") {
		t.Error("expected cursor restored last")
	}
	if !strings.Contains(s, "ASTEROIDS") {
		t.Error("title never rendered")
	}
}

func TestRunContextCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, bufio.NewReader(pr), io.Discard, Options{TermSizeFunc: draw.FixedSize(90, 35)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
}

func TestRunIdleTimeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	err := Run(context.Background(), bufio.NewReader(pr), io.Discard, Options{
		TermSizeFunc: draw.FixedSize(90, 35),
		IdleTimeout:  50 * time.Millisecond,
	})
	if !errors.Is(err, ErrIdle) {
		t.Errorf("Run returned %v, want ErrIdle", err)
	}
}

func TestRunIdleTimeoutSparesActiveGame(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	go pw.Write([]byte("\n"))

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()

	err := Run(ctx, bufio.NewReader(pr), io.Discard, Options{
		TermSizeFunc: draw.FixedSize(90, 35),
		Rand:         rand.New(rand.NewSource(1)),
		IdleTimeout:  50 * time.Millisecond,
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run returned %v, want the game to outlast the idle timeout", err)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunWriteError(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	err := Run(context.Background(), bufio.NewReader(pr), failWriter{}, Options{TermSizeFunc: draw.FixedSize(90, 35)})
	if err == nil || err.Error() != "broken pipe" {
		t.Errorf("Run returned %v, want broken pipe", err)
	}
}
