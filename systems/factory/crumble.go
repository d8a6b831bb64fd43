package factory

import (
	"github.com/automoto/kagerun/archetypes"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCrumble(ecs *ecs.ECS, variant int, x, y float64) *donburi.Entry {
	block := archetypes.Crumble.Spawn(ecs)
	data := components.CrumbleData{
		Variant: variant,
		Pos:     math.Vec2{X: x, Y: y},
		Size:    cfg.Crumble.Size,
		State:   components.CrumbleSolid,
	}
	components.Crumble.SetValue(block, data)

	newObject(ecs, block, data.Rect(), tags.ResolvCrumble)
	return block
}
