package physics

import "math"

// Grid is a uniform bucket grid for broad-phase collision checks on a
// wrapping play field. Items are added by position and index; Near visits
// the 3x3 block of cells around a point.
//
// The cell size must be at least the largest distance at which two items
// can touch, otherwise Near can miss a pair.
type Grid struct {
	size  float64
	cols  int
	rows  int
	cells [][]int // Reset keeps the backing arrays between ticks
}

// NewGrid creates a grid covering bounds with square cells of the given size.
func NewGrid(bounds Bounds, cellSize float64) *Grid {
	cols := max(1, int(math.Ceil(float64(bounds.Width)/cellSize)))
	rows := max(1, int(math.Ceil(float64(bounds.Height)/cellSize)))
	return &Grid{
		size:  cellSize,
		cols:  cols,
		rows:  rows,
		cells: make([][]int, cols*rows),
	}
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Add registers index at position p.
func (g *Grid) Add(p Point, index int) {
	c := g.cell(p)
	g.cells[c] = append(g.cells[c], index)
}

// Near calls fn for every index in the cells around p, wrapping at the
// field edges. Iteration stops once fn returns true.
func (g *Grid) Near(p Point, fn func(index int) bool) {
	col, row := g.coords(p)
	seen := 0
	var visited [9]int
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + g.rows) % g.rows
		for dc := -1; dc <= 1; dc++ {
			c := (col + dc + g.cols) % g.cols
			idx := r*g.cols + c
			// Small grids wrap onto the same cell more than once.
			dup := false
			for _, v := range visited[:seen] {
				if v == idx {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			visited[seen] = idx
			seen++
			for _, item := range g.cells[idx] {
				if fn(item) {
					return
				}
			}
		}
	}
}

func (g *Grid) cell(p Point) int {
	col, row := g.coords(p)
	return row*g.cols + col
}

// coords clamps to the grid so positions slightly off the field still land
// in an edge cell.
func (g *Grid) coords(p Point) (col, row int) {
	col = min(max(int(p.X/g.size), 0), g.cols-1)
	row = min(max(int(p.Y/g.size), 0), g.rows-1)
	return col, row
}
