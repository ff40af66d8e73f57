package sand

import (
	"github.com/JSKitty/rusty-sandbox/internal/core"
)

// World owns the particle grid and advances it one simulated frame at a time.
// It is the only component that swaps grid slots; all other mutation goes
// through Brush writes.
type World struct {
	cfg  Config
	grid *Grid
	rng  *core.RNG

	// seen holds the ids already processed this frame. A particle swapped
	// into a not-yet-visited slot must not be simulated a second time.
	seen map[int64]struct{}
}

// New returns a sandbox world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	return &World{
		cfg:  cfg,
		grid: NewGrid(cfg.Width, cfg.Height),
		rng:  core.NewRNG(cfg.Seed),
		seen: make(map[int64]struct{}),
	}
}

// Grid exposes the particle grid for brushes and renderers.
func (w *World) Grid() *Grid { return w.grid }

// Reset deactivates all material and restarts the random stream.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng.Reseed(seed)
	w.grid.Clear()
}

// Step advances the whole grid by one frame. Coordinates are scanned in
// ascending x, then ascending y within each column; each logical particle is
// evaluated at most once per frame regardless of how many times it is swapped
// into a not-yet-visited slot.
func (w *World) Step() {
	g := w.grid
	clear(w.seen)
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			p := g.At(x, y)
			if !p.Active {
				continue
			}
			if _, done := w.seen[p.ID]; done {
				continue
			}
			w.seen[p.ID] = struct{}{}
			if !p.Variant.Physical() {
				continue
			}
			w.move(x, y, p)
		}
	}
}

// move applies the per-particle rule at (x, y): gravity fall, then density
// sinking through water, then randomized lateral drift.
func (w *World) move(x, y int, p *Particle) {
	g := w.grid
	if y+1 < g.h {
		below := g.At(x, y+1)
		if !below.Active {
			relocate(p, below)
			return
		}
		if below.Variant.Liquid() && !p.Variant.Liquid() {
			sink(p, below)
			return
		}
	}

	dx := 0
	if w.rng.Chance(p.Variant.MoveChance()) {
		dx = w.rng.Span(w.cfg.Params.DriftSpan)
	}
	ny := y
	if w.rng.Chance(w.cfg.Params.DiagonalChance) {
		ny++
	}
	nx := x + dx
	if nx == x && ny == y {
		return
	}
	if !g.In(nx, ny) {
		return
	}
	dst := g.At(nx, ny)
	switch {
	case !dst.Active:
		relocate(p, dst)
	case dst.Variant.Liquid() && !p.Variant.Liquid():
		sink(p, dst)
	}
	// Anything else blocks: solid on solid, or liquid on liquid.
}

// relocate moves src's material and id into an inactive destination slot.
func relocate(src, dst *Particle) {
	dst.Variant = src.Variant
	dst.Active = true
	dst.ID, src.ID = src.ID, dst.ID
	src.Active = false
}

// sink swaps a solid into a liquid slot. The vacated slot takes the displaced
// liquid, not empty space: a solid sinking through liquid leaves liquid in
// its wake.
func sink(src, dst *Particle) {
	dst.Variant, src.Variant = src.Variant, dst.Variant
	dst.ID, src.ID = src.ID, dst.ID
}
