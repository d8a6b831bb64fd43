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

// CreatePlayer spawns the named character with its top-left corner at (x, y).
func CreatePlayer(ecs *ecs.ECS, character string, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	c := cfg.CharacterByName(character)

	components.Player.SetValue(player, components.PlayerData{
		Character:      c.Name,
		Ability:        c.Ability,
		DashParticle:   c.DashParticle,
		Jumps:          cfg.Player.MaxJumps,
		DashMultiplier: 1,
	})
	body := components.BodyData{
		Kind:  c.Name,
		Pos:   math.Vec2{X: x, Y: y},
		W:     c.Width,
		H:     c.Height,
		Anims: c.Anims,
	}
	body.SetAction(cfg.AnimIdle)
	components.Body.SetValue(player, body)

	newObject(ecs, player, body.Rect(), tags.ResolvPlayer)
	return player
}
