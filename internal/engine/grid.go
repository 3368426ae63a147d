package engine

import "fmt"

// CellState is the content of one grid cell.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellFilled
	CellTrail
)

// String returns the string representation of a cell state.
func (c CellState) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellFilled:
		return "Filled"
	case CellTrail:
		return "Trail"
	default:
		return "Unknown"
	}
}

// Grid is the board. The outermost ring is always Filled.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W      int
	H      int
	cells  []CellState
	filled int // Filled cells inside the border
}

// NewGrid creates a w×h grid with a Filled border and an Empty interior.
func NewGrid(w, h int) *Grid {
	if w < 3 || h < 3 {
		panic(fmt.Sprintf("engine: grid %dx%d has no interior", w, h))
	}
	g := &Grid{
		W:     w,
		H:     h,
		cells: make([]CellState, w*h),
	}
	g.Reset()
	return g
}

// Reset restores the level-start layout.
func (g *Grid) Reset() {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			state := CellEmpty
			if g.IsBorder(P(x, y)) {
				state = CellFilled
			}
			g.cells[y*g.W+x] = state
		}
	}
	g.filled = 0
}

// InBounds returns true if p lies on the grid, border included.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// IsBorder returns true for cells of the outermost ring.
func (g *Grid) IsBorder(p Position) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.W-1 || p.Y == g.H-1
}

// index converts a position to a flat index. Out-of-bounds is a caller bug.
func (g *Grid) index(p Position) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("engine: position %v outside %dx%d grid", p, g.W, g.H))
	}
	return p.Y*g.W + p.X
}

// CellAt returns the state at p. Panics when p is off the grid.
func (g *Grid) CellAt(p Position) CellState {
	return g.cells[g.index(p)]
}

// SetCell stores state at p and keeps the filled count current.
// Panics when p is off the grid or when asked to erode the border.
func (g *Grid) SetCell(p Position, state CellState) {
	i := g.index(p)
	if g.IsBorder(p) {
		if state != CellFilled {
			panic(fmt.Sprintf("engine: border cell %v cannot become %s", p, state))
		}
		return
	}
	old := g.cells[i]
	if old == state {
		return
	}
	if old == CellFilled {
		g.filled--
	}
	if state == CellFilled {
		g.filled++
	}
	g.cells[i] = state
}

// Interior returns the number of non-border cells.
func (g *Grid) Interior() int {
	return (g.W - 2) * (g.H - 2)
}

// FilledCount returns the number of Filled interior cells.
func (g *Grid) FilledCount() int {
	return g.filled
}

// FillPercentage returns filled interior cells as a percentage in [0, 100].
func (g *Grid) FillPercentage() float64 {
	return float64(g.filled) * 100 / float64(g.Interior())
}

// Count returns how many interior cells hold the given state.
func (g *Grid) Count(state CellState) int {
	n := 0
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			if g.cells[y*g.W+x] == state {
				n++
			}
		}
	}
	return n
}

// Cells returns a copy of the row-major cell slice.
func (g *Grid) Cells() []CellState {
	return append([]CellState(nil), g.cells...)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		W:      g.W,
		H:      g.H,
		cells:  g.Cells(),
		filled: g.filled,
	}
}

// blocksBall reports whether a ball cannot enter p.
func (g *Grid) blocksBall(p Position) bool {
	return !g.InBounds(p) || g.cells[p.Y*g.W+p.X] == CellFilled
}
