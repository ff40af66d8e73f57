package sand

import "image/color"

var sandboxPalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},       // empty space
	{R: 194, G: 178, B: 128, A: 255}, // Sand
	{R: 121, G: 85, B: 58, A: 255},   // Dirt
	{R: 64, G: 120, B: 220, A: 255},  // Water
	{R: 230, G: 41, B: 55, A: 255},   // Brick
}

// Palette returns the display colors indexed by display value: 0 is empty
// space, 1+v is an active particle of variant v.
func Palette() []color.RGBA {
	return sandboxPalette
}

// DisplayIndex maps a slot record to its palette index.
func DisplayIndex(p Particle) uint8 {
	if !p.Active {
		return 0
	}
	return 1 + uint8(p.Variant)
}
