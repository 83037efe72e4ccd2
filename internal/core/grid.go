package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Coordinates outside the grid read as zero.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Neighbors counts non-zero cells in the Moore neighborhood of (x, y). The
// neighborhood is clamped to the grid: cells past an edge are not counted.
func (g *ByteGrid) Neighbors(x, y int) int {
	minX := max(0, x-1)
	maxX := min(g.W-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.H-1, y+1)

	count := 0
	for ny := minY; ny <= maxY; ny++ {
		row := ny * g.W
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.data[row+nx] != 0 {
				count++
			}
		}
	}
	return count
}

// Count returns the number of non-zero cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Any reports whether at least one cell is non-zero.
func (g *ByteGrid) Any() bool {
	for _, c := range g.data {
		if c != 0 {
			return true
		}
	}
	return false
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
