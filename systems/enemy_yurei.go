package systems

import (
	"math"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/automoto/kagerun/shared/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Yurei floats through walls toward a player it can see. It can only be hurt
// while the player carries a spirit blessing, and killing it spends the
// blessing.
type Yurei struct{}

func (y Yurei) Update(e *ecs.ECS, entry *donburi.Entry) bool {
	enemy := components.Enemy.Get(entry)
	body := components.Body.Get(entry)
	tc := enemy.TypeConfig
	grid := GetOrCreateLevel(e).Map

	tickInvuln(entry)
	if enemy.ContactCooldown > 0 {
		enemy.ContactCooldown--
	}

	pe, ok := playerEntry(e)
	if !ok {
		return false
	}
	target := components.Body.Get(pe)
	dx := target.CenterX() - body.CenterX()
	dy := target.CenterY() - body.CenterY()
	distance := math.Hypot(dx, dy)

	if distance > 1e-3 && distance < tc.SightRange && hasLineOfSight(grid, body, target, tc.SightStep) {
		vx, vy := gamemath.SeekVelocity(body.CenterX(), body.CenterY(), target.CenterX(), target.CenterY(), tc.MoveSpeed)
		body.Pos.X += vx
		body.Pos.Y += vy
		body.SetAction(cfg.AnimRun)
		body.Flip = dx < 0
	} else {
		body.SetAction(cfg.AnimIdle)
		ms := float64(GetOrCreateSession(e).Tick) * 1000 / 60
		body.Pos.Y += math.Sin(ms*tc.BobSpeed) * tc.BobAmplitude
	}
	SyncObject(e, entry, body.Rect())

	touching := body.Rect().Overlaps(target.Rect())
	if touching && enemy.ContactCooldown == 0 {
		y.touchPlayer(e, pe)
		enemy.ContactCooldown = tc.ContactCooldown
	}

	player := components.Player.Get(pe)
	if player.Blessing && player.DashAttacking(cfg.Dash.HitThreshold) && touching && components.Health.Get(entry).Invuln == 0 {
		y.TakeDamage(e, entry, 1)
	}

	if body.Anim != nil {
		body.Anim.Update()
	}

	if components.Health.Get(entry).Current <= 0 {
		return y.Die(e, entry)
	}
	return false
}

// touchPlayer hurts the player unless a dash, smoke or shield protects them.
func (y Yurei) touchPlayer(e *ecs.ECS, pe *donburi.Entry) {
	player := components.Player.Get(pe)
	if player.DashAttacking(cfg.Dash.HitThreshold) || player.SmokeActive > 0 {
		return
	}
	if GetOrCreateSession(e).Dead > 0 {
		return
	}
	HitPlayer(e, pe)
}

func (y Yurei) TakeDamage(e *ecs.ECS, entry *donburi.Entry, amount int) bool {
	pe, ok := playerEntry(e)
	if !ok || !components.Player.Get(pe).Blessing {
		return false
	}
	return damageEnemy(e, entry, amount)
}

func (y Yurei) Die(e *ecs.ECS, entry *donburi.Entry) bool {
	if pe, ok := playerEntry(e); ok {
		components.Player.Get(pe).Blessing = false
	}
	return enemyDeath(e, entry)
}

// hasLineOfSight samples the segment between the two centers every step
// pixels and fails on the first solid tile.
func hasLineOfSight(grid *tilemap.Tilemap, from, to *components.BodyData, step float64) bool {
	if grid == nil {
		return true
	}
	return gamemath.SampleLine(from.CenterX(), from.CenterY(), to.CenterX(), to.CenterY(), step, func(x, y float64) bool {
		return !grid.IsSolid(x, y)
	})
}
