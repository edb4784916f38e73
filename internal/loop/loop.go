// Package loop runs a game in a terminal: input, update and draw at a
// fixed frame rate.
package loop

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/session"
	"github.com/tomz197/asteroids-arcade/internal/wave"
)

// ErrIdle is returned by Run when the title or game-over screen sat without
// input for longer than Options.IdleTimeout.
var ErrIdle = errors.New("idle timeout")

// Options configures Run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Terminal size source (os.Stdout if nil)
	Rand         wave.Rand
	Soundtrack   session.Soundtrack
	Logger       *log.Logger
	IdleTimeout  time.Duration // Zero disables the idle check
}

// Run plays one game on the terminal behind r and w with the standard
// Input → Update → Draw cycle. It returns nil when the player quits, the
// context's error when ctx ends, or the first write error.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = config.DiscardLogger()
	}

	game := NewGame(GameOptions{
		Rand:       opts.Rand,
		Soundtrack: opts.Soundtrack,
		Logger:     logger,
	})
	stream := input.StartStream(r)

	termWidth, termHeight, _ := termSizeFunc()
	canvas := draw.NewCanvas(termWidth, termHeight, config.FieldWidth, config.FieldHeight)
	cw := draw.NewChunkWriter(w, canvas.OffsetCol(), canvas.OffsetRow())

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	defer draw.ClearScreen(w)
	if opts.Soundtrack != nil {
		defer opts.Soundtrack.Stop()
	}

	lastInput := time.Now()

	for {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit {
			logger.Debug("player quit", "score", game.Session.Score())
			return nil
		}
		// Idle time only accrues on the title and game-over screens.
		if in != (input.Input{}) || game.Session.State() == session.Playing {
			lastInput = frameStart
		} else if opts.IdleTimeout > 0 && frameStart.Sub(lastInput) > opts.IdleTimeout {
			return ErrIdle
		}

		// ===== UPDATE PHASE =====
		if err := game.Tick(in); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if tw, th, err := termSizeFunc(); err == nil {
			canvas.Resize(tw, th)
			cw.SetOffset(canvas.OffsetCol(), canvas.OffsetRow())
		}
		if err := drawFrame(game, canvas, cw); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TickTime {
			time.Sleep(config.TickTime - elapsed)
		}
	}
}

// drawFrame clears the screen and draws the world with the HUD on top.
func drawFrame(game *Game, canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	cw.ClearScreen()
	canvas.Clear()

	if err := game.Draw(canvas); err != nil {
		return err
	}
	canvas.Render(cw)
	canvas.RenderText(cw, game.Board)

	return cw.Flush()
}
