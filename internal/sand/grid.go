package sand

import "fmt"

// Grid is a dense, grow-only 2D store of particle records in row-major order.
// Slots are relabeled as material moves through the grid; they are never
// deallocated individually. Particle ids start at 1 and strictly increase.
type Grid struct {
	w, h   int
	cells  []Particle
	nextID int64
}

// NewGrid allocates a grid covering [0,w) x [0,h).
func NewGrid(w, h int) *Grid {
	g := &Grid{}
	g.EnsureSize(w, h)
	return g
}

// Width returns the current grid width in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the current grid height in cells.
func (g *Grid) Height() int { return g.h }

// Cells exposes the backing slice so renderers can scan slots directly.
func (g *Grid) Cells() []Particle { return g.cells }

// In reports whether (x, y) addresses an existing slot. Callers must check
// bounds before calling At.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the slot record at (x, y). Out-of-bounds access is a contract
// violation and panics.
func (g *Grid) At(x, y int) *Particle {
	if !g.In(x, y) {
		panic(fmt.Sprintf("sand: grid access out of bounds: (%d,%d) in %dx%d", x, y, g.w, g.h))
	}
	return &g.cells[y*g.w+x]
}

// EnsureSize grows the grid so that every coordinate in [0,w) x [0,h) is
// valid. Existing slots keep their records; new slots become inactive
// Sand-typed placeholders with fresh ids. The grid never shrinks.
func (g *Grid) EnsureSize(w, h int) {
	if w <= g.w && h <= g.h {
		return
	}
	if w < g.w {
		w = g.w
	}
	if h < g.h {
		h = g.h
	}
	cells := make([]Particle, w*h)
	for y := 0; y < g.h; y++ {
		copy(cells[y*w:y*w+g.w], g.cells[y*g.w:(y+1)*g.w])
	}
	g.cells, g.w, g.h = cells, w, h
	for i := range g.cells {
		if g.cells[i].ID == 0 {
			g.cells[i] = Particle{ID: g.allocID(), Variant: Sand}
		}
	}
}

// Clear deactivates every slot, keeping ids and storage in place.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Active = false
	}
}

func (g *Grid) allocID() int64 {
	g.nextID++
	return g.nextID
}
