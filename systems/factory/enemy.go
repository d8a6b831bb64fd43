package factory

import (
	"log"

	"github.com/automoto/kagerun/archetypes"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy of the given type with its top-left corner at
// (x, y). Unknown types fall back to a Gunner.
func CreateEnemy(ecs *ecs.ECS, kind string, x, y float64, behavior components.EnemyBehavior) *donburi.Entry {
	enemyType, exists := cfg.Enemies.Types[kind]
	if !exists {
		log.Printf("Warning: unknown enemy type %q, using %s", kind, cfg.EnemyGunner)
		kind = cfg.EnemyGunner
		enemyType = cfg.Enemies.Types[kind]
	}

	enemy := archetypes.Enemy.Spawn(ecs)
	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   kind,
		TypeConfig: &enemyType,
		Behavior:   behavior,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current:      enemyType.Health,
		Max:          enemyType.Health,
		InvulnFrames: enemyType.InvulnFrames,
	})

	body := components.BodyData{
		Kind:         kind,
		Pos:          math.Vec2{X: x, Y: y},
		W:            enemyType.Width,
		H:            enemyType.Height,
		SolidHazards: true,
		Anims:        cfg.EnemyAnimations[kind],
	}
	body.SetAction(cfg.AnimIdle)
	components.Body.SetValue(enemy, body)

	newObject(ecs, enemy, body.Rect(), tags.ResolvEnemy)
	return enemy
}
