package systems

import (
	"math"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// Gunner idles, occasionally patrols for a while, and fires one shot at the
// end of a patrol if it is facing the player at roughly the same height.
type Gunner struct{}

func (g Gunner) Update(e *ecs.ECS, entry *donburi.Entry) bool {
	enemy := components.Enemy.Get(entry)
	body := components.Body.Get(entry)
	tc := enemy.TypeConfig
	grid := GetOrCreateLevel(e).Map
	r := rng(e)

	var movement dmath.Vec2
	if enemy.Walking > 0 {
		aheadX := body.CenterX() + cfg.Enemies.LookAhead*body.Facing()
		wall := grid != nil && grid.IsSolid(aheadX, body.CenterY())
		if !isSafeAhead(grid, body) || wall {
			body.Flip = !body.Flip
		} else {
			movement.X = tc.MoveSpeed * body.Facing()
		}

		enemy.Walking--
		if enemy.Walking == 0 {
			g.shootAtPlayer(e, body, tc)
		}
	} else if r.Float64() < tc.WalkChance {
		enemy.Walking = randInt(r, tc.WalkMin, tc.WalkMax)
	}

	MoveBody(body, grid, movement, false, crumbleSolids(e))
	if movement.X != 0 {
		body.SetAction(cfg.AnimRun)
	} else {
		body.SetAction(cfg.AnimIdle)
	}
	SyncObject(e, entry, body.Rect())

	if dashHits(e, body) {
		g.TakeDamage(e, entry, 1)
	}
	if components.Health.Get(entry).Current <= 0 {
		return g.Die(e, entry)
	}
	return false
}

func (g Gunner) shootAtPlayer(e *ecs.ECS, body *components.BodyData, tc *cfg.EnemyTypeConfig) {
	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	target := components.Body.Get(entry)
	dx := target.Pos.X - body.Pos.X
	dy := target.Pos.Y - body.Pos.Y
	if math.Abs(dy) >= tc.FireBand {
		return
	}
	dir := body.Facing()
	if dx*dir <= 0 {
		return
	}
	pos := dmath.Vec2{X: body.CenterX() + cfg.Enemies.ShotOffset*dir, Y: body.CenterY()}
	fireShot(e, pos, dir, tc.ShotSpeed, tc.ShotSprite)
}

func (g Gunner) TakeDamage(e *ecs.ECS, entry *donburi.Entry, amount int) bool {
	return damageEnemy(e, entry, amount)
}

func (g Gunner) Die(e *ecs.ECS, entry *donburi.Entry) bool {
	return enemyDeath(e, entry)
}
