package sand

import "testing"

func TestMovementRuleTable(t *testing.T) {
	for v := Variant(0); v < variantCount; v++ {
		if c := v.MoveChance(); c < 0 || c > 100 {
			t.Fatalf("%v move chance %d outside [0,100]", v, c)
		}
		if !v.Physical() && v.MoveChance() != 0 {
			t.Fatalf("inert variant %v has move chance %d", v, v.MoveChance())
		}
		if v.Liquid() && !v.Physical() {
			t.Fatalf("liquid variant %v must be physical", v)
		}
	}
	if Brick.Physical() {
		t.Fatal("brick must be structural")
	}
	if !Water.Liquid() {
		t.Fatal("water must be liquid")
	}
	if Sand.Liquid() || Dirt.Liquid() {
		t.Fatal("solids must not be liquid")
	}
}
