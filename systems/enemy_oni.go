package systems

import (
	"math"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// Oni walks toward a nearby player and fires a volley both ways on a fixed
// interval. It is enraged while the player is in range.
type Oni struct{}

func (o Oni) Update(e *ecs.ECS, entry *donburi.Entry) bool {
	enemy := components.Enemy.Get(entry)
	body := components.Body.Get(entry)
	tc := enemy.TypeConfig
	grid := GetOrCreateLevel(e).Map

	tickInvuln(entry)

	pe, ok := playerEntry(e)
	if !ok {
		return false
	}
	dx := components.Body.Get(pe).CenterX() - body.CenterX()
	distance := math.Abs(dx)

	enemy.ShootTimer++
	if enemy.ShootTimer >= tc.ShootInterval && distance < tc.ShootRange {
		center := dmath.Vec2{X: body.CenterX(), Y: body.CenterY()}
		for _, dir := range []float64{-1, 1} {
			fireShot(e, center, dir, tc.ShotSpeed, tc.ShotSprite)
		}
		enemy.ShootTimer = 0
		enemy.Enraged = true
	}

	var movement dmath.Vec2
	if distance < tc.ChaseRange {
		movement.X = tc.MoveSpeed
		if dx <= 0 {
			movement.X = -tc.MoveSpeed
		}
		body.Flip = dx < 0
		if !isSafeAhead(grid, body) {
			movement.X = 0
		}
		if movement.X != 0 {
			body.SetAction(cfg.AnimRun)
		} else {
			body.SetAction(cfg.AnimIdle)
		}
	} else {
		body.SetAction(cfg.AnimIdle)
		enemy.Enraged = false
	}

	MoveBody(body, grid, movement, false, crumbleSolids(e))
	SyncObject(e, entry, body.Rect())

	if components.Health.Get(entry).Invuln == 0 && dashHits(e, body) {
		o.TakeDamage(e, entry, 1)
	}
	if components.Health.Get(entry).Current <= 0 {
		return o.Die(e, entry)
	}
	return false
}

func (o Oni) TakeDamage(e *ecs.ECS, entry *donburi.Entry, amount int) bool {
	return damageEnemy(e, entry, amount)
}

func (o Oni) Die(e *ecs.ECS, entry *donburi.Entry) bool {
	return enemyDeath(e, entry)
}
