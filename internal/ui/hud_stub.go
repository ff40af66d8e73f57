//go:build !ebiten

package ui

import "github.com/JSKitty/rusty-sandbox/internal/sand"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD() *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, sand.Variant, bool) {}
