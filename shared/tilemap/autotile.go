package tilemap

type side uint8

const (
	sideRight side = 1 << iota
	sideLeft
	sideUp
	sideDown
)

var sideOffsets = [...]struct {
	bit side
	off GridKey
}{
	{sideRight, GridKey{1, 0}},
	{sideLeft, GridKey{-1, 0}},
	{sideUp, GridKey{0, -1}},
	{sideDown, GridKey{0, 1}},
}

// autotileVariants maps the set of same-type orthogonal neighbors to a
// variant. Variants run clockwise from the top-left piece, 8 is the center.
var autotileVariants = map[side]int{
	sideRight | sideDown:                      0,
	sideRight | sideDown | sideLeft:           1,
	sideLeft | sideDown:                       2,
	sideLeft | sideUp | sideDown:              3,
	sideLeft | sideUp:                         4,
	sideLeft | sideUp | sideRight:             5,
	sideRight | sideUp:                        6,
	sideRight | sideUp | sideDown:             7,
	sideRight | sideLeft | sideUp | sideDown: 8,
}

// Autotile rewrites the variant of every autotile-type grid tile from its
// same-type neighbors. Neighbor sets without an entry keep their variant.
// Only types are compared, so the pass is idempotent.
func (m *Tilemap) Autotile() {
	for k, t := range m.grid {
		if !AutotileTypes[t.Type] {
			continue
		}
		var mask side
		for _, s := range sideOffsets {
			if n, ok := m.grid[k.Add(s.off)]; ok && n.Type == t.Type {
				mask |= s.bit
			}
		}
		if v, ok := autotileVariants[mask]; ok {
			t.Variant = v
			m.grid[k] = t
		}
	}
}
