package factory

import (
	"github.com/automoto/kagerun/archetypes"
	"github.com/automoto/kagerun/components"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace replaces any existing broad-phase space with one covering
// bounds. Objects are stored relative to the bounds' top-left corner, which
// becomes the level origin.
func CreateSpace(ecs *ecs.ECS, bounds gamemath.Rect, cellSize int) *donburi.Entry {
	if old, ok := components.Space.First(ecs.World); ok {
		ecs.World.Remove(old.Entity())
	}
	space := archetypes.Space.Spawn(ecs)
	w := int(bounds.W) + cellSize
	h := int(bounds.H) + cellSize
	components.Space.Set(space, resolv.NewSpace(w, h, cellSize, cellSize))

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		level.Origin.X = bounds.X
		level.Origin.Y = bounds.Y
	}
	return space
}

// newObject creates a collision object for rect linked to entry, adding it
// to the space when one exists.
func newObject(ecs *ecs.ECS, entry *donburi.Entry, rect gamemath.Rect, tags ...string) *resolv.Object {
	var ox, oy float64
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		origin := components.Level.Get(levelEntry).Origin
		ox, oy = origin.X, origin.Y
	}
	obj := resolv.NewObject(rect.X-ox, rect.Y-oy, rect.W, rect.H, tags...)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
