// Package hud turns session state into on-screen text: the three HUD lines
// and centered banners for the title, respawn and game-over prompts.
package hud

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Surface is the text primitive of a front end. Text shown at an anchor
// stays until something else is shown at exactly that anchor; an empty
// string erases it.
type Surface interface {
	ShowText(text string, x, y int)
}

// Anchor is a text position in field units (the center of the text).
type Anchor struct {
	X, Y int
}

// Board is an in-memory Surface. Front ends render its contents each frame.
type Board struct {
	texts map[Anchor]string
}

var _ Surface = (*Board)(nil)

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{texts: make(map[Anchor]string)}
}

// ShowText implements Surface.
func (b *Board) ShowText(text string, x, y int) {
	a := Anchor{X: x, Y: y}
	if text == "" {
		delete(b.texts, a)
		return
	}
	b.texts[a] = text
}

// Text returns the text at an anchor.
func (b *Board) Text(x, y int) string {
	return b.texts[Anchor{X: x, Y: y}]
}

// Len returns the number of non-empty anchors.
func (b *Board) Len() int {
	return len(b.texts)
}

// Each calls fn for every text, top to bottom then left to right, so
// overlapping anchors always paint in the same order.
func (b *Board) Each(fn func(a Anchor, text string)) {
	anchors := make([]Anchor, 0, len(b.texts))
	for a := range b.texts {
		anchors = append(anchors, a)
	}
	sort.Slice(anchors, func(i, j int) bool {
		if anchors[i].Y != anchors[j].Y {
			return anchors[i].Y < anchors[j].Y
		}
		return anchors[i].X < anchors[j].X
	})
	for _, a := range anchors {
		fn(a, b.texts[a])
	}
}

// HUD line anchors.
const (
	hudX      = 90
	scoreY    = 20
	livesY    = 40
	waveY     = 60
	lineExtra = 6 // Added to the font size to get the banner line height
)

// Banner texts.
const (
	TitleBanner    = "ASTEROIDS\nPress ENTER to start"
	GameOverBanner = "GAME OVER\nPress ENTER to start"
	RespawnBanner  = "GET READY"
)

// Presenter lays out HUD lines and banners on a Surface.
type Presenter struct {
	surface Surface
	bounds  physics.Bounds
	banner  []Anchor // Anchors written by the current banner
	current string
}

// NewPresenter creates a presenter drawing onto surface for a field of the
// given size.
func NewPresenter(surface Surface, bounds physics.Bounds) *Presenter {
	return &Presenter{surface: surface, bounds: bounds}
}

// DrawHUD writes the score, lives and wave lines.
func (p *Presenter) DrawHUD(score, lives, wave int) {
	p.surface.ShowText(fmt.Sprintf("Score: %d", score), hudX, scoreY)
	p.surface.ShowText(fmt.Sprintf("Lives: %d", lives), hudX, livesY)
	p.surface.ShowText(fmt.Sprintf("Wave: %d", wave), hudX, waveY)
}

// ClearHUD blanks the three HUD lines.
func (p *Presenter) ClearHUD() {
	p.surface.ShowText("", hudX, scoreY)
	p.surface.ShowText("", hudX, livesY)
	p.surface.ShowText("", hudX, waveY)
}

// ShowCentered draws a multi-line banner centered on the field, each line
// with a drop shadow one unit down and right. The previous banner is
// cleared first. Showing the banner already on screen is a no-op.
func (p *Presenter) ShowCentered(msg string, fontSize int) {
	if msg == p.current && len(p.banner) > 0 {
		return
	}
	p.ClearCentered()

	lines := strings.Split(msg, "\n")
	lineHeight := fontSize + lineExtra
	cx := p.bounds.Width / 2
	startY := p.bounds.Height/2 - (len(lines)*lineHeight)/2
	for i, line := range lines {
		y := startY + i*lineHeight
		p.show(line, cx+1, y+1)
		p.show(line, cx, y)
	}
	p.current = msg
}

// ClearCentered overwrites every line of the current banner with blank text.
func (p *Presenter) ClearCentered() {
	for _, a := range p.banner {
		p.surface.ShowText("", a.X, a.Y)
	}
	p.banner = p.banner[:0]
	p.current = ""
}

// Banner returns the message currently shown, or "" if none.
func (p *Presenter) Banner() string {
	return p.current
}

func (p *Presenter) show(text string, x, y int) {
	p.surface.ShowText(text, x, y)
	p.banner = append(p.banner, Anchor{X: x, Y: y})
}
