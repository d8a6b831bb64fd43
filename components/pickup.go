package components

import (
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PickupData struct {
	Kind    string
	Spawn   math.Vec2 // center of the resting position
	CenterY float64
	Size    float64
	Timer   int
	// Bob eases the bob amplitude in after spawning.
	Bob *gween.Tween
}

func (p *PickupData) Rect() gamemath.Rect {
	return gamemath.NewRect(p.Spawn.X-p.Size/2, p.CenterY-p.Size/2, p.Size, p.Size)
}

var Pickup = donburi.NewComponentType[PickupData]()
