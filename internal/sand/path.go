package sand

// LineWalk enumerates the integer coordinates between two grid points, one
// step at a time. Each step moves at most one cell per axis toward the
// target, so the walk is 8-connected and its length equals the Chebyshev
// distance between the endpoints. This is not a true Bresenham line; steep
// diagonals cut corners, which is close enough for filling drag gaps.
type LineWalk struct {
	x, y   int
	tx, ty int
}

// NewLineWalk starts a walk at (x0, y0) heading toward (x1, y1). The start
// point itself is not emitted.
func NewLineWalk(x0, y0, x1, y1 int) *LineWalk {
	return &LineWalk{x: x0, y: y0, tx: x1, ty: y1}
}

// Next advances one step and reports the new coordinate. ok is false once
// the target has been emitted; the walk is consumed and cannot restart.
func (l *LineWalk) Next() (x, y int, ok bool) {
	if l.x == l.tx && l.y == l.ty {
		return l.x, l.y, false
	}
	if l.x < l.tx {
		l.x++
	} else if l.x > l.tx {
		l.x--
	}
	if l.y < l.ty {
		l.y++
	} else if l.y > l.ty {
		l.y--
	}
	return l.x, l.y, true
}
