//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/JSKitty/rusty-sandbox/internal/render"
	"github.com/JSKitty/rusty-sandbox/internal/sand"
	"github.com/JSKitty/rusty-sandbox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panStep = 8

var paletteKeys = [...]struct {
	key     ebiten.Key
	variant sand.Variant
}{
	{ebiten.KeyDigit1, sand.Sand},
	{ebiten.KeyDigit2, sand.Dirt},
	{ebiten.KeyDigit3, sand.Water},
	{ebiten.KeyDigit4, sand.Brick},
}

// Game adapts the sandbox world to the ebiten.Game interface. Each frame it
// samples input, paints, advances the simulation, and draws, in that order.
type Game struct {
	world   *sand.World
	brush   *sand.Brush
	painter *render.Painter
	hud     *ui.HUD
	cam     render.Camera
	palette []color.RGBA

	paused   bool
	tickOnce bool

	viewW, viewH int
}

// New constructs a Game for the provided world.
func New(world *sand.World, zoom int) *Game {
	return &Game{
		world:   world,
		brush:   sand.NewBrush(world.Grid()),
		painter: render.NewPainter(),
		hud:     ui.NewHUD(),
		cam:     render.NewCamera(zoom),
		palette: sand.Palette(),
	}
}

// Update handles per-frame input, painting, and simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset(time.Now().UnixNano())
	}

	g.handleBrushKeys()
	g.handleCameraKeys()

	// Grow the grid to cover whatever the window currently shows.
	cw, ch := g.cam.ScreenToCell(g.viewW-1, g.viewH-1)
	g.world.Grid().EnsureSize(cw+1, ch+1)

	g.handlePointer()

	g.hud.Update()

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleBrushKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.brush.SetRadius(g.brush.Radius() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.brush.SetRadius(g.brush.Radius() - 1)
	}
	for _, pk := range paletteKeys {
		if inpututil.IsKeyJustPressed(pk.key) {
			g.brush.SetVariant(pk.variant)
		}
	}
}

func (g *Game) handleCameraKeys() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.cam.Pan(panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.cam.Pan(-panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cam.Pan(0, panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cam.Pan(0, -panStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.cam.AdjustZoom(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.cam.AdjustZoom(-1)
	}
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	cx, cy := g.cam.ScreenToCell(mx, my)

	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.brush.Press(cx, cy, g.brush.Variant())
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		// The right button always lays brick, whatever the palette says.
		g.brush.Press(cx, cy, sand.Brick)
	default:
		g.brush.Release()
	}
}

// Draw renders the current world state and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.world.Grid(), g.palette, g.cam)
	g.hud.Draw(screen, g.brush.Radius(), g.brush.Variant(), g.paused)
}

// Layout returns the logical screen size; the view tracks the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewW, g.viewH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
