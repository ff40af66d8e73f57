package render

// Camera maps between grid cells and screen pixels: cells are drawn as
// Zoom-sized squares offset by (OffsetX, OffsetY) screen pixels. The
// simulation itself knows nothing about it.
type Camera struct {
	Zoom    int
	OffsetX int
	OffsetY int
}

// NewCamera returns a camera at the origin with the provided zoom.
func NewCamera(zoom int) Camera {
	if zoom < 1 {
		zoom = 1
	}
	return Camera{Zoom: zoom}
}

// ScreenToCell converts a screen pixel position into grid cell coordinates.
// The result may be out of the grid's bounds; callers bounds-check.
func (c Camera) ScreenToCell(sx, sy int) (int, int) {
	return floorDiv(sx-c.OffsetX, c.Zoom), floorDiv(sy-c.OffsetY, c.Zoom)
}

// Pan shifts the camera by the given pixel deltas.
func (c *Camera) Pan(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// AdjustZoom changes the zoom by delta, clamped to a minimum of 1.
func (c *Camera) AdjustZoom(delta int) {
	c.Zoom += delta
	if c.Zoom < 1 {
		c.Zoom = 1
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}
