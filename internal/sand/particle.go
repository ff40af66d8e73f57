package sand

// Variant enumerates the particle materials.
type Variant uint8

const (
	Sand Variant = iota
	Dirt
	Water
	Brick

	variantCount = 4
)

// Particle is one grid slot's record. Every slot always holds a Particle;
// empty space is a record with Active = false. The ID follows the material
// when slots are swapped, so it identifies a logical particle across moves.
type Particle struct {
	ID      int64
	Variant Variant
	Active  bool
}

// behavior is the per-variant movement rule table. MoveChance is the
// percentage likelihood per frame of attempting a lateral drift. Variants
// with Physical = false never move and are only rendered. Solids displace
// Liquid variants downward and sideways, leaving the liquid in their wake.
type behavior struct {
	MoveChance int
	Physical   bool
	Liquid     bool
}

var behaviors = [variantCount]behavior{
	Sand:  {MoveChance: 50, Physical: true},
	Dirt:  {MoveChance: 25, Physical: true},
	Water: {MoveChance: 85, Physical: true, Liquid: true},
	Brick: {MoveChance: 0, Physical: false},
}

// MoveChance returns the variant's lateral movement probability in [0, 100].
func (v Variant) MoveChance() int { return behaviors[v].MoveChance }

// Physical reports whether the variant participates in the simulation at all.
func (v Variant) Physical() bool { return behaviors[v].Physical }

// Liquid reports whether solids sink through the variant.
func (v Variant) Liquid() bool { return behaviors[v].Liquid }

func (v Variant) String() string {
	switch v {
	case Sand:
		return "sand"
	case Dirt:
		return "dirt"
	case Water:
		return "water"
	case Brick:
		return "brick"
	}
	return "unknown"
}
