package factory

import (
	"github.com/automoto/kagerun/archetypes"
	"github.com/automoto/kagerun/components"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEmitter spawns a particle emitter covering rect.
func CreateEmitter(ecs *ecs.ECS, particle string, rect gamemath.Rect) *donburi.Entry {
	emitter := archetypes.Emitter.Spawn(ecs)
	components.Emitter.SetValue(emitter, components.EmitterData{Type: particle, Rect: rect})
	return emitter
}
