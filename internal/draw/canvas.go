// Package draw renders the play field to an ANSI terminal using half-block
// characters, so each terminal cell holds two square-ish pixels.
package draw

import "math"

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// circleSegments is the number of chords used to approximate a circle.
const circleSegments = 16

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// It scales from logical (field) coordinates to terminal pixels, keeping the
// field's aspect ratio and centering it in the terminal.
type Canvas struct {
	cols           int    // Canvas columns
	rows           int    // Canvas rows
	subPixelHeight int    // rows * 2
	pixels         []bool // Flat slice: [y * cols + x] - true if pixel is set

	logicalWidth  float64
	logicalHeight float64
	scale         float64 // Pixels per logical unit, same on both axes

	// 0-based terminal offsets (columns/rows to skip) for centering
	offsetCol int
	offsetRow int
}

// NewCanvas creates a canvas for a terminal of termWidth x termHeight cells
// showing a logicalWidth x logicalHeight field.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize refits the canvas to new terminal dimensions. It is cheap when the
// size did not change.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)

	scale := math.Min(
		float64(termWidth)/c.logicalWidth,
		float64(termHeight*2)/c.logicalHeight,
	)
	cols := max(1, int(math.Round(c.logicalWidth*scale)))
	rows := max(1, int(math.Ceil(c.logicalHeight*scale/2)))

	if cols != c.cols || rows != c.rows {
		c.cols = cols
		c.rows = rows
		c.subPixelHeight = rows * 2
		c.pixels = make([]bool, c.subPixelHeight*cols)
	}
	c.scale = scale
	c.offsetCol = (termWidth - cols) / 2
	c.offsetRow = (termHeight - rows) / 2
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Columns returns the canvas width in terminal cells.
func (c *Canvas) Columns() int {
	return c.cols
}

// Rows returns the canvas height in terminal cells.
func (c *Canvas) Rows() int {
	return c.rows
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at canvas pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.cols+x] = true
	}
}

func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x * c.scale)), int(math.Round(y * c.scale))
}

// Dot sets a single pixel at logical coordinates.
func (c *Canvas) Dot(x, y float64) {
	c.setPixel(c.toPixel(x, y))
}

// Line draws a line using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	px1, py1 := c.toPixel(x0, y0)
	px2, py2 := c.toPixel(x1, y1)

	dx := abs(px2 - px1)
	dy := abs(py2 - py1)

	sx := 1
	if px1 > px2 {
		sx = -1
	}
	sy := 1
	if py1 > py2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(px1, py1)

		if px1 == px2 && py1 == py2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			px1 += sx
		}
		if e2 < dx {
			err += dx
			py1 += sy
		}
	}
}

// Circle draws a circle outline as a regular polygon.
func (c *Canvas) Circle(x, y, r float64) {
	prevX, prevY := x+r, y
	for i := 1; i <= circleSegments; i++ {
		a := float64(i) * 2 * math.Pi / circleSegments
		nx, ny := x+math.Cos(a)*r, y+math.Sin(a)*r
		c.Line(prevX, prevY, nx, ny)
		prevX, prevY = nx, ny
	}
}

// Render queues the lit cells on cw as half-block characters. Nothing
// reaches the terminal until cw is flushed.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := 0; row < c.rows; row++ {
		topOffset := row * 2 * c.cols
		bottomOffset := topOffset + c.cols

		for col := 0; col < c.cols; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue // Skip empty cells
			}

			cw.MoveCursor(col+1, row+1)
			cw.WriteRune(ch)
		}
	}
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas
// position (col, row), before the centering offset.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
