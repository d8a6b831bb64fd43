package factory

import (
	"github.com/automoto/kagerun/archetypes"
	"github.com/automoto/kagerun/components"
	"github.com/automoto/kagerun/shared/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level singleton with an empty map. mapNames lists
// the map files in level order.
func CreateLevel(ecs *ecs.ECS, mapNames []string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Map:      tilemap.New(tilemap.DefaultTileSize),
		MapNames: mapNames,
	})
	return level
}
