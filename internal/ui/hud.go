//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/JSKitty/rusty-sandbox/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var hudColor = color.RGBA{R: 90, G: 140, B: 255, A: 255}

// HUD draws control help and brush status over the simulation view.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD; it starts visible and toggles with the H key.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update handles HUD-local input.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the help text and the current brush state.
func (h *HUD) Draw(screen *ebiten.Image, radius int, variant sand.Variant, paused bool) {
	if h == nil || !h.visible {
		return
	}
	face := basicfont.Face7x13

	text.Draw(screen, "left click paints, right click lays brick", face, 8, 16, hudColor)
	text.Draw(screen, "1-4 pick material, +/- brush size, h hides this", face, 8, 30, hudColor)

	status := fmt.Sprintf("brush: %s, size %d", variant, radius)
	if paused {
		status += "  [paused]"
	}
	bottom := screen.Bounds().Dy() - 10
	text.Draw(screen, status, face, 8, bottom, hudColor)
}
