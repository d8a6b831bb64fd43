package systems

import (
	"math"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/automoto/kagerun/shared/tilemap"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// Jump performs a wall jump, ground jump or air jump. It reports whether
// any jump happened.
func Jump(e *ecs.ECS, entry *donburi.Entry) bool {
	player := components.Player.Get(entry)
	body := components.Body.Get(entry)

	player.Sliding = false
	player.SlideLocked = false

	if player.WallSlide {
		// only when pushing toward the wall being slid on
		var vx float64
		switch {
		case body.Flip && player.MoveX < 0:
			vx = cfg.Player.WallJumpX
		case !body.Flip && player.MoveX > 0:
			vx = -cfg.Player.WallJumpX
		default:
			return false
		}
		body.Vel.X = vx
		body.Vel.Y = -cfg.Player.WallJumpY
		player.AirTime = cfg.Player.JumpAirTime
		player.Jumps = max(0, player.Jumps-1)
		PlaySFX(e, cfg.SoundJump)
		return true
	}

	if player.Jumps <= 0 {
		return false
	}
	boosted := player.SlideBoost > 0
	speed := cfg.Player.JumpSpeed
	if boosted {
		speed *= cfg.Player.BoostMultiplier
	}
	body.Vel.Y = -speed
	player.Jumps--
	player.AirTime = cfg.Player.JumpAirTime

	switch {
	case player.Jumps < 1:
		cloudBurst(e, body)
		PlaySFX(e, cfg.SoundCloudJump)
	case boosted:
		PlaySFX(e, cfg.SoundSlideJump)
		cloudBurst(e, body)
	default:
		PlaySFX(e, cfg.SoundJump)
	}
	return true
}

// Dash starts a dash in the facing direction if it is off cooldown.
func Dash(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if player.DashCooldown != 0 {
		return
	}
	body := components.Body.Get(entry)

	player.Sliding = false
	player.SlideLocked = false
	PlaySFX(e, cfg.SoundDash)
	player.Dashing = cfg.Dash.Duration
	if body.Flip {
		player.Dashing = -cfg.Dash.Duration
	}
	player.DashCooldown = int(float64(cfg.Dash.Cooldown) * player.DashMultiplier)
}

// Slide drops through a platform when standing still on one, and otherwise
// starts a slide if it is off cooldown.
func Slide(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	body := components.Body.Get(entry)

	still := math.Abs(player.MoveX) < 0.1
	if still && player.WasGrounded > 0 && onPlatform(e, body) {
		player.DropTimer = cfg.Player.DropTime
		body.Vel.Y = math.Max(body.Vel.Y, cfg.Player.DropMinVY)
		body.Pos.Y += cfg.Player.DropNudge
		return
	}

	if player.SlideCooldown != 0 {
		return
	}
	player.Sliding = true
	if player.MoveX != 0 {
		body.Vel.X = math.Max(math.Abs(body.Vel.X), cfg.Slide.MinSpeed) * body.Facing()
		PlaySFX(e, cfg.SoundSlide)
	} else {
		body.Vel.X = 0
	}
	player.SlideLocked = true
	player.SlideBoost = cfg.Slide.BoostWindow
	player.SlideCooldown = cfg.Slide.Cooldown
}

func onPlatform(e *ecs.ECS, body *components.BodyData) bool {
	grid := GetOrCreateLevel(e).Map
	if grid == nil {
		return false
	}
	tile, ok := grid.TileAt(body.CenterX(), body.Bottom()+1)
	return ok && tilemap.PlatformTypes[tile.Type]
}

// UseAbility triggers the character's ability.
func UseAbility(e *ecs.ECS, entry *donburi.Entry) {
	switch components.Player.Get(entry).Ability {
	case cfg.AbilityBlowgun:
		ShootBlowgun(e, entry)
	case cfg.AbilitySmokeBomb:
		SmokeBomb(e, entry)
	}
}

// SmokeBomb makes the player immune to hits for a while.
func SmokeBomb(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if player.SmokeCooldown != 0 {
		return
	}
	body := components.Body.Get(entry)
	player.SmokeActive = cfg.Abilities.SmokeDuration
	player.SmokeCooldown = cfg.Abilities.SmokeCooldown
	PlaySFX(e, cfg.SoundSmokeBomb)

	r := rng(e)
	center := dmath.Vec2{X: body.CenterX(), Y: body.CenterY()}
	for i := 0; i < cfg.Abilities.SmokeParticles; i++ {
		vx, vy := gamemath.Polar(r.Float64()*2*math.Pi, randRange(r, 0.5, 1.5))
		SpawnParticle(e, "cloud_jump", center, dmath.Vec2{X: vx, Y: vy}, randInt(r, 0, 3))
	}
}

// ShootBlowgun fires a dart in the facing direction.
func ShootBlowgun(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if player.ShootCooldown != 0 {
		return
	}
	body := components.Body.Get(entry)
	player.ShootCooldown = cfg.Abilities.BlowgunCooldown

	dir := body.Facing()
	pos := dmath.Vec2{X: body.CenterX() + cfg.Abilities.BlowgunOffset*dir, Y: body.CenterY()}
	SpawnProjectile(e, components.Projectile{
		Pos:    pos,
		Vel:    dmath.Vec2{X: cfg.Abilities.BlowgunSpeed * dir},
		Source: components.SourcePlayer,
		Sprite: "blowdart",
		Damage: cfg.Abilities.BlowgunDamage,
		Flip:   dir < 0,
	})
	PlaySFX(e, cfg.SoundBlowgun)
	muzzleFlash(e, pos, dir, cfg.Abilities.MuzzleSparks)
}

// KillPlayer starts the death sequence.
func KillPlayer(e *ecs.ECS, entry *donburi.Entry) {
	session := GetOrCreateSession(e)
	body := components.Body.Get(entry)
	session.Dead++
	PlaySFX(e, cfg.SoundHit)
	session.Shake(cfg.Player.DeathShake)
	impactBurst(e, dmath.Vec2{X: body.CenterX(), Y: body.CenterY()}, cfg.Player.DeathSparks)
}

// HitPlayer applies an undodged hit: the shield absorbs it if present,
// otherwise the player dies.
func HitPlayer(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if player.Shield {
		player.Shield = false
		PlaySFX(e, cfg.SoundShieldShatter)
		return
	}
	if GetOrCreateSession(e).Dead == 0 {
		KillPlayer(e, entry)
	}
}

// ResetPlayer clears every timer and buff, as on a level load.
func ResetPlayer(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	body := components.Body.Get(entry)

	*player = components.PlayerData{
		Character:      player.Character,
		Ability:        player.Ability,
		DashParticle:   player.DashParticle,
		Jumps:          cfg.Player.MaxJumps,
		DashMultiplier: 1,
	}
	body.Vel = dmath.Vec2{}
	body.Flip = false
	body.Collisions = components.Collisions{}
	body.Anim = nil
	body.SetAction(cfg.AnimIdle)
}
