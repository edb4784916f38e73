package draw

import (
	"strings"
	"unicode/utf8"

	"github.com/tomz197/asteroids-arcade/internal/hud"
)

// RenderText writes every text on the board over the canvas. Each anchor is
// the horizontal center of its text; text is clipped to the canvas.
func (c *Canvas) RenderText(cw *ChunkWriter, board *hud.Board) {
	board.Each(func(a hud.Anchor, text string) {
		col, row := c.LogicalToTerminal(float64(a.X), float64(a.Y))
		for i, line := range strings.Split(text, "\n") {
			c.writeCentered(cw, col, row+i, line)
		}
	})
}

func (c *Canvas) writeCentered(cw *ChunkWriter, col, row int, line string) {
	if row < 1 || row > c.rows {
		return
	}
	start := col - utf8.RuneCountInString(line)/2
	if start < 1 {
		line = clipLeft(line, 1-start)
		start = 1
	}
	room := c.cols - start + 1
	if room <= 0 || line == "" {
		return
	}
	if utf8.RuneCountInString(line) > room {
		line = string([]rune(line)[:room])
	}
	cw.WriteAt(start, row, line)
}

func clipLeft(s string, n int) string {
	r := []rune(s)
	if n >= len(r) {
		return ""
	}
	return string(r[n:])
}
