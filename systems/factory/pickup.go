package factory

import (
	"github.com/automoto/kagerun/archetypes"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// PickupKinds maps pickup tile variants to pickup kinds.
var PickupKinds = []string{cfg.PickupRamen, cfg.PickupSushi, cfg.PickupBlessing}

// CreatePickup spawns a pickup centered in the tile whose top-left corner is
// at (x, y). Its bob amplitude eases in from zero.
func CreatePickup(ecs *ecs.ECS, kind string, x, y float64) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)
	size := cfg.Pickups.Size
	center := math.Vec2{X: x + size/2, Y: y + size/2}

	data := components.PickupData{
		Kind:    kind,
		Spawn:   center,
		CenterY: center.Y,
		Size:    size,
		Bob:     gween.New(0, float32(cfg.Pickups.BobAmplitude), float32(cfg.Pickups.BobEaseTicks), ease.OutSine),
	}
	components.Pickup.SetValue(pickup, data)

	newObject(ecs, pickup, data.Rect(), tags.ResolvPickup)
	return pickup
}
