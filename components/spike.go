package components

import (
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type SpikeData struct {
	Pos     math.Vec2
	Variant int
	Ceiling bool
	Hitbox  gamemath.Rect
}

var Spike = donburi.NewComponentType[SpikeData]()
