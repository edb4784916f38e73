// Package desktop runs a game in a window using ebiten.
package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/hud"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/loop"
	"github.com/tomz197/asteroids-arcade/internal/object"
)

// debugGlyph is the size of one ebitenutil debug font glyph.
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

var strokeColor = color.White

// Game adapts a loop.Game to ebiten.Game.
type Game struct {
	game    *loop.Game
	keys    []ebiten.Key
	drawErr error // ebiten's Draw cannot fail, so the next Update reports it
}

var _ ebiten.Game = (*Game)(nil)

// New wraps g for ebiten.RunGame.
func New(g *loop.Game) *Game {
	return &Game{game: g}
}

// Update reads the keyboard and ticks the game. Escape or Q ends the run.
func (d *Game) Update() error {
	if d.drawErr != nil {
		return d.drawErr
	}
	d.keys = inpututil.AppendPressedKeys(d.keys[:0])
	in := keysToInput(d.keys)
	if in.Quit {
		return ebiten.Termination
	}
	return d.game.Tick(in)
}

// Draw renders the world and the HUD board.
func (d *Game) Draw(screen *ebiten.Image) {
	d.drawWorld(&plotter{dst: screen})
	d.game.Board.Each(func(a hud.Anchor, text string) {
		x := a.X - len(text)*debugGlyphWidth/2
		y := a.Y - debugGlyphHeight/2
		ebitenutil.DebugPrintAt(screen, text, x, y)
	})
}

func (d *Game) drawWorld(p object.Plotter) {
	if err := d.game.Draw(p); err != nil && d.drawErr == nil {
		d.drawErr = err
	}
}

// Layout keeps the logical screen at the field size; ebiten scales the window.
func (d *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.FieldWidth, config.FieldHeight
}

// keysToInput maps held keys to the game's controls, mirroring the
// terminal bindings.
func keysToInput(keys []ebiten.Key) input.Input {
	var in input.Input
	for _, k := range keys {
		switch k {
		case ebiten.KeyEscape, ebiten.KeyQ:
			in.Quit = true
		case ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyJ:
			in.Left = true
		case ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL:
			in.Right = true
		case ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyI:
			in.Up = true
		case ebiten.KeySpace:
			in.Space = true
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			in.Enter = true
		}
	}
	return in
}

// plotter draws vector primitives onto an ebiten image (object.Plotter).
type plotter struct {
	dst *ebiten.Image
}

func (p *plotter) Line(x0, y0, x1, y1 float64) {
	vector.StrokeLine(p.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, strokeColor, true)
}

func (p *plotter) Circle(x, y, r float64) {
	vector.StrokeCircle(p.dst, float32(x), float32(y), float32(r), 1.5, strokeColor, true)
}

func (p *plotter) Dot(x, y float64) {
	vector.DrawFilledRect(p.dst, float32(x)-1, float32(y)-1, 2, 2, strokeColor, false)
}
