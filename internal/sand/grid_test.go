package sand

import "testing"

func TestNewGridFillsInactivePlaceholders(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("grid size = %dx%d, expected 4x3", g.Width(), g.Height())
	}

	seen := map[int64]bool{}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			p := g.At(x, y)
			if p.Active {
				t.Fatalf("fresh slot (%d,%d) must be inactive", x, y)
			}
			if p.Variant != Sand {
				t.Fatalf("fresh slot (%d,%d) variant = %v, expected sand placeholder", x, y, p.Variant)
			}
			if p.ID == 0 {
				t.Fatalf("fresh slot (%d,%d) has no id", x, y)
			}
			if seen[p.ID] {
				t.Fatalf("duplicate id %d at (%d,%d)", p.ID, x, y)
			}
			seen[p.ID] = true
		}
	}
}

func TestEnsureSizeGrowsWithoutTruncating(t *testing.T) {
	g := NewGrid(4, 3)
	marker := g.At(3, 2)
	marker.Variant = Brick
	marker.Active = true
	markerID := marker.ID

	g.EnsureSize(6, 5)
	if g.Width() != 6 || g.Height() != 5 {
		t.Fatalf("grid size after growth = %dx%d, expected 6x5", g.Width(), g.Height())
	}

	p := g.At(3, 2)
	if !p.Active || p.Variant != Brick || p.ID != markerID {
		t.Fatalf("slot (3,2) after growth = %+v, expected the original brick with id %d", *p, markerID)
	}

	seen := map[int64]bool{}
	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			p := g.At(x, y)
			if p.ID == 0 {
				t.Fatalf("slot (%d,%d) has no id after growth", x, y)
			}
			if seen[p.ID] {
				t.Fatalf("duplicate id %d at (%d,%d) after growth", p.ID, x, y)
			}
			seen[p.ID] = true
			if (x >= 4 || y >= 3) && (p.Active || p.Variant != Sand) {
				t.Fatalf("new slot (%d,%d) = %+v, expected inactive sand placeholder", x, y, *p)
			}
		}
	}
}

func TestEnsureSizeNeverShrinks(t *testing.T) {
	g := NewGrid(6, 5)
	g.EnsureSize(2, 2)
	if g.Width() != 6 || g.Height() != 5 {
		t.Fatalf("grid shrank to %dx%d", g.Width(), g.Height())
	}

	// Growth on a single axis keeps the other axis intact.
	g.EnsureSize(8, 2)
	if g.Width() != 8 || g.Height() != 5 {
		t.Fatalf("grid size = %dx%d, expected 8x5", g.Width(), g.Height())
	}
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	g := NewGrid(4, 3)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("At(%d,%d) did not panic", c[0], c[1])
				}
			}()
			g.At(c[0], c[1])
		}()
	}
}

func TestClearKeepsIDs(t *testing.T) {
	g := NewGrid(3, 3)
	p := g.At(1, 1)
	p.Active = true
	p.Variant = Water
	id := p.ID

	g.Clear()
	p = g.At(1, 1)
	if p.Active {
		t.Fatal("Clear must deactivate every slot")
	}
	if p.ID != id {
		t.Fatalf("Clear changed slot id from %d to %d", id, p.ID)
	}
}
