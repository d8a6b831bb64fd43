package systems

import (
	"math"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every projectile and resolves what it hit: a wall,
// an enemy for player darts, or the player for enemy shots.
func UpdateProjectiles(e *ecs.ECS) {
	fx := GetOrCreateEffects(e)
	grid := GetOrCreateLevel(e).Map
	r := rng(e)

	kept := fx.Projectiles[:0]
	for _, p := range fx.Projectiles {
		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		p.Timer++

		if p.Timer > cfg.Effects.ProjectileLife {
			continue
		}
		if grid != nil && grid.IsSolid(p.Pos.X, p.Pos.Y) {
			for i := 0; i < cfg.Effects.ImpactSparks; i++ {
				SpawnSpark(e, p.Pos, r.Float64()*2*math.Pi, 2+r.Float64())
			}
			continue
		}

		var hit bool
		switch p.Source {
		case components.SourcePlayer:
			hit = dartHitsEnemy(e, p)
		case components.SourceEnemy:
			hit = shotHitsPlayer(e, p)
		}
		if !hit {
			kept = append(kept, p)
		}
	}
	clear(fx.Projectiles[len(kept):])
	fx.Projectiles = kept
}

// dartHitsEnemy damages the first enemy containing the dart and reports
// whether the dart is used up.
func dartHitsEnemy(e *ecs.ECS, p components.Projectile) bool {
	var target *donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if target == nil && components.Body.Get(entry).Rect().Contains(p.Pos.X, p.Pos.Y) {
			target = entry
		}
	})
	if target == nil {
		return false
	}
	behavior := components.Enemy.Get(target).Behavior
	if behavior.TakeDamage(e, target, p.Damage) {
		behavior.Die(e, target)
		removeEnemy(e, target)
	}
	return true
}

// shotHitsPlayer applies an enemy shot to the player. A dash passes through
// shots and smoke lets them fly on.
func shotHitsPlayer(e *ecs.ECS, p components.Projectile) bool {
	entry, ok := playerEntry(e)
	if !ok || GetOrCreateSession(e).Dead > 0 {
		return false
	}
	player := components.Player.Get(entry)
	if player.DashAttacking(cfg.Dash.HitThreshold) {
		return false
	}
	if !components.Body.Get(entry).Rect().Contains(p.Pos.X, p.Pos.Y) {
		return false
	}
	if player.SmokeActive > 0 {
		return false
	}
	HitPlayer(e, entry)
	return true
}
