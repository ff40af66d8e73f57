//go:build ebiten

package render

import (
	"image/color"

	"github.com/JSKitty/rusty-sandbox/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads the particle grid into a single RGBA image and draws it
// camera-scaled. The backing image grows along with the grid.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates an empty painter; the image is sized on first Blit.
func NewPainter() *Painter {
	return &Painter{}
}

// Blit uploads the grid's current slots and draws them onto dst through the
// camera transform.
func (p *Painter) Blit(dst *ebiten.Image, g *sand.Grid, palette []color.RGBA, cam Camera) {
	w, h := g.Width(), g.Height()
	if w == 0 || h == 0 {
		return
	}
	if p.img == nil || p.w != w || p.h != h {
		p.w, p.h = w, h
		p.buf = make([]byte, 4*w*h)
		p.img = ebiten.NewImage(w, h)
	}
	fillParticleRGBA(p.buf, g.Cells(), palette)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cam.Zoom), float64(cam.Zoom))
	op.GeoM.Translate(float64(cam.OffsetX), float64(cam.OffsetY))
	dst.DrawImage(p.img, op)
}
