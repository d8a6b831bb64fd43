package factory

import (
	"github.com/automoto/kagerun/archetypes"
	"github.com/automoto/kagerun/components"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/automoto/kagerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateSpike spawns a spike whose damaging strip is hitbox. The caller
// decides the orientation from the surrounding tiles.
func CreateSpike(ecs *ecs.ECS, variant int, x, y float64, ceiling bool, hitbox gamemath.Rect) *donburi.Entry {
	spike := archetypes.Spike.Spawn(ecs)
	components.Spike.SetValue(spike, components.SpikeData{
		Pos:     math.Vec2{X: x, Y: y},
		Variant: variant,
		Ceiling: ceiling,
		Hitbox:  hitbox,
	})

	newObject(ecs, spike, hitbox, tags.ResolvSpike)
	return spike
}
