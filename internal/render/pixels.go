package render

import (
	"image/color"

	"github.com/JSKitty/rusty-sandbox/internal/sand"
)

// fillParticleRGBA converts particle slots into RGBA pixels in buf using the
// palette convention from sand.Palette: index 0 is empty space, 1+variant is
// an active particle.
func fillParticleRGBA(buf []byte, cells []sand.Particle, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, p := range cells {
		idx := int(sand.DisplayIndex(p))
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
