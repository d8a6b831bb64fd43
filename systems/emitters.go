package systems

import (
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEmitters drops leaves from flora. Bigger emitters spawn more often.
func UpdateEmitters(e *ecs.ECS) {
	r := rng(e)
	var spawns []components.EmitterData
	tags.Emitter.Each(e.World, func(entry *donburi.Entry) {
		em := components.Emitter.Get(entry)
		if r.Float64()*cfg.Effects.EmitterDensity < em.Rect.W*em.Rect.H {
			spawns = append(spawns, *em)
		}
	})
	for _, em := range spawns {
		pos := dmath.Vec2{
			X: em.Rect.X + r.Float64()*em.Rect.W,
			Y: em.Rect.Y + r.Float64()*em.Rect.H,
		}
		vel := dmath.Vec2{X: cfg.Effects.EmitterVelX, Y: cfg.Effects.EmitterVelY}
		SpawnParticle(e, em.Type, pos, vel, randInt(r, 0, cfg.Effects.EmitterMaxOffset))
	}
}
