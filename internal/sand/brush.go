package sand

// Brush translates pointer positions into particle writes. Painting only
// fills inactive slots; existing material is never overwritten.
//
// A drag session is a two-state machine. The first held frame records the
// anchor without line-painting, so a stale anchor from a previous session
// cannot leave a trail across the screen. From the second held frame onward
// every update paints the full walk from the previous point.
type Brush struct {
	grid    *Grid
	radius  int
	variant Variant

	dragging     bool
	lastX, lastY int
}

// NewBrush returns a brush writing into the provided grid.
func NewBrush(g *Grid) *Brush {
	return &Brush{grid: g, radius: 1, variant: Sand}
}

// Radius returns the current paint radius in cells.
func (b *Brush) Radius() int { return b.radius }

// SetRadius sets the paint radius, clamped to a minimum of 1.
func (b *Brush) SetRadius(r int) {
	if r < 1 {
		r = 1
	}
	b.radius = r
}

// Variant returns the currently selected material.
func (b *Brush) Variant() Variant { return b.variant }

// SetVariant selects the material painted by subsequent strokes.
func (b *Brush) SetVariant(v Variant) { b.variant = v }

// Press handles one frame of a held pointer button at grid cell (x, y).
func (b *Brush) Press(x, y int, v Variant) {
	if b.dragging {
		b.PaintLine(b.lastX, b.lastY, x, y, v)
	} else {
		b.dragging = true
	}
	b.PaintArea(x, y, v)
	b.lastX, b.lastY = x, y
}

// Release ends the current drag session.
func (b *Brush) Release() {
	b.dragging = false
}

// PaintArea fills the radius window anchored at (cx, cy): x in [cx-r, cx+r),
// y in [cy, cy+r). The window is asymmetric on y, filling downward from the
// anchor only; a quirk of the original fill loop, kept as-is.
func (b *Brush) PaintArea(cx, cy int, v Variant) {
	for y := cy; y < cy+b.radius; y++ {
		for x := cx - b.radius; x < cx+b.radius; x++ {
			b.activate(x, y, v)
		}
	}
}

// PaintLine activates every cell on the walk from (x0, y0) to (x1, y1),
// filling the gaps a fast drag leaves between sampled pointer positions.
func (b *Brush) PaintLine(x0, y0, x1, y1 int, v Variant) {
	walk := NewLineWalk(x0, y0, x1, y1)
	for x, y, ok := walk.Next(); ok; x, y, ok = walk.Next() {
		b.activate(x, y, v)
	}
}

func (b *Brush) activate(x, y int, v Variant) {
	if !b.grid.In(x, y) {
		return
	}
	p := b.grid.At(x, y)
	if p.Active {
		return
	}
	p.Variant = v
	p.Active = true
}
