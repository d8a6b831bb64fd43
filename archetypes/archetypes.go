package archetypes

import (
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.LevelScoped,
		components.Enemy,
		components.Body,
		components.Health,
		components.Object,
	)
	Crumble = newArchetype(
		tags.Crumble,
		tags.LevelScoped,
		components.Crumble,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		tags.LevelScoped,
		components.Pickup,
		components.Object,
	)
	Spike = newArchetype(
		tags.Spike,
		tags.LevelScoped,
		components.Spike,
		components.Object,
	)
	Emitter = newArchetype(
		tags.Emitter,
		tags.LevelScoped,
		components.Emitter,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
	)
	Effects = newArchetype(
		components.Effects,
	)
	Ambience = newArchetype(
		components.Ambience,
	)
	Tips = newArchetype(
		components.Tips,
		components.Banner,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Select = newArchetype(
		components.Select,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
