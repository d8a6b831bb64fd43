package systems

import (
	"math"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/tilemap"
	"github.com/automoto/kagerun/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs every enemy's behavior and removes the ones that died,
// crediting one kill each.
func UpdateEnemies(e *ecs.ECS) {
	if _, ok := playerEntry(e); !ok {
		return
	}
	var enemies []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemies = append(enemies, entry)
	})
	for _, entry := range enemies {
		if !entry.Valid() {
			continue
		}
		enemy := components.Enemy.Get(entry)
		enemy.Age++
		if enemy.Behavior.Update(e, entry) {
			removeEnemy(e, entry)
		}
	}
}

// BehaviorFor returns the behavior for an enemy type key.
func BehaviorFor(kind string) components.EnemyBehavior {
	switch kind {
	case cfg.EnemyOni:
		return Oni{}
	case cfg.EnemyYurei:
		return Yurei{}
	default:
		return Gunner{}
	}
}

func removeEnemy(e *ecs.ECS, entry *donburi.Entry) {
	GetOrCreateSession(e).Kills++
	RemoveObject(e, entry)
	e.World.Remove(entry.Entity())
}

// isSafeAhead reports whether the tile just ahead of the body's feet is
// solid ground without a hazard on it.
func isSafeAhead(grid *tilemap.Tilemap, body *components.BodyData) bool {
	if grid == nil {
		return false
	}
	aheadX := body.CenterX() + cfg.Enemies.LookAhead*body.Facing()
	return grid.IsSolid(aheadX, body.Bottom()+1) && !grid.IsDangerous(aheadX, body.Bottom()-1)
}

// damageEnemy is the damage rule every enemy shares: ignored while
// invulnerable, otherwise health drops and invulnerability restarts.
func damageEnemy(e *ecs.ECS, entry *donburi.Entry, amount int) bool {
	health := components.Health.Get(entry)
	if health.Invuln > 0 {
		return false
	}
	health.Current -= amount
	health.Invuln = health.InvulnFrames

	body := components.Body.Get(entry)
	PlaySFX(e, cfg.SoundHit)
	GetOrCreateSession(e).Shake(cfg.Enemies.HitShake)
	impactBurst(e, dmath.Vec2{X: body.CenterX(), Y: body.CenterY()}, cfg.Enemies.HitSparks)
	return health.Current <= 0
}

// enemyDeath plays the shared death effects. It always reports true.
func enemyDeath(e *ecs.ECS, entry *donburi.Entry) bool {
	enemy := components.Enemy.Get(entry)
	body := components.Body.Get(entry)
	center := dmath.Vec2{X: body.CenterX(), Y: body.CenterY()}

	GetOrCreateSession(e).Shake(cfg.Enemies.HitShake)
	sound := cfg.SoundHit
	if enemy.TypeConfig != nil && enemy.TypeConfig.DeathSound != cfg.SoundNone {
		sound = enemy.TypeConfig.DeathSound
	}
	PlaySFX(e, sound)
	impactBurst(e, center, cfg.Enemies.DeathSparks)

	r := rng(e)
	SpawnSpark(e, center, 0, cfg.Enemies.BigSparkMin+r.Float64())
	SpawnSpark(e, center, math.Pi, cfg.Enemies.BigSparkMin+r.Float64())
	return true
}

// dashHits reports whether the player is dashing through the enemy's body.
func dashHits(e *ecs.ECS, body *components.BodyData) bool {
	entry, ok := playerEntry(e)
	if !ok {
		return false
	}
	player := components.Player.Get(entry)
	if !player.DashAttacking(cfg.Dash.HitThreshold) {
		return false
	}
	return body.Rect().Overlaps(components.Body.Get(entry).Rect())
}

// fireShot launches an enemy projectile from pos along dir with a muzzle flash.
func fireShot(e *ecs.ECS, pos dmath.Vec2, dir, speed float64, sprite string) {
	PlaySFX(e, cfg.SoundShoot)
	SpawnProjectile(e, components.Projectile{
		Pos:    pos,
		Vel:    dmath.Vec2{X: speed * dir},
		Source: components.SourceEnemy,
		Sprite: sprite,
		Damage: 1,
		Flip:   dir < 0,
	})
	muzzleFlash(e, pos, dir, cfg.Enemies.MuzzleFlash)
}

// tickInvuln counts down the enemy's invulnerability.
func tickInvuln(entry *donburi.Entry) {
	if h := components.Health.Get(entry); h.Invuln > 0 {
		h.Invuln--
	}
}
