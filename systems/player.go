package systems

import (
	"math"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer feeds this tick's input to the player and steps it. A dead
// player is frozen until the session reloads the level.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := playerEntry(e)
	if !ok || GetOrCreateSession(e).Dead > 0 {
		return
	}
	input := getOrCreateInput(e)
	player := components.Player.Get(entry)

	player.MoveX = 0
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		player.MoveX++
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		player.MoveX--
	}
	player.SlidePressed = GetAction(input, cfg.ActionSlide).Pressed

	if GetAction(input, cfg.ActionJump).JustPressed {
		Jump(e, entry)
	}
	if GetAction(input, cfg.ActionDash).JustPressed {
		Dash(e, entry)
	}
	if GetAction(input, cfg.ActionAbility).JustPressed {
		UseAbility(e, entry)
	}

	StepPlayer(e, entry)
}

// StepPlayer advances the player one tick from the input already stored on
// PlayerData.
func StepPlayer(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	body := components.Body.Get(entry)
	level := GetOrCreateLevel(e)

	if player.TakeSlidePress(player.WasGrounded > 0) {
		Slide(e, entry)
	}

	if player.MoveX != 0 {
		body.Flip = player.MoveX < 0
	}

	if player.Sliding {
		if math.Abs(body.Vel.X) > cfg.Slide.StopSpeed {
			body.Vel.X = gamemath.ApplyFriction(body.Vel.X, cfg.Slide.Decay)
		} else {
			body.Vel.X = 0
		}
		if !player.SlidePressed {
			player.Sliding = false
			player.SlideLocked = false
		}
	}

	movement := dmath.Vec2{X: player.MoveX}
	if player.SlideLocked {
		movement.X = 0
	}

	ignorePlatforms := false
	if player.DropTimer > 0 {
		player.DropTimer--
		ignorePlatforms = true
	}

	MoveBody(body, level.Map, movement, ignorePlatforms, crumbleSolids(e))

	switch {
	case body.Collisions.Down:
		player.AirTime = 0
		player.Jumps = cfg.Player.MaxJumps
		player.WasGrounded = cfg.Player.GroundGrace
	case player.WasGrounded > 0:
		player.AirTime++
		player.WasGrounded--
	default:
		player.AirTime++
	}

	// Walking off a ledge costs the ground jump once the grace runs out.
	if player.Jumps == cfg.Player.MaxJumps && player.AirTime > cfg.Player.AirJumpAfter && !body.Collisions.Down {
		player.Jumps--
	}

	updatePlayerAnimation(player, body, movement)
	updateDash(e, player, body)
	tickPlayerTimers(player)

	if !player.Sliding {
		body.Vel.X = gamemath.ApplyFriction(body.Vel.X, cfg.Physics.AirResistance)
	}

	if player.AirTime > cfg.Player.FallDeathTime {
		session := GetOrCreateSession(e)
		if session.Dead == 0 {
			session.Shake(cfg.Player.DeathShake)
		}
		session.Dead++
	}

	if player.Blessing && GetOrCreateSession(e).Tick%3 == 0 {
		emitBlessingFlame(e, body)
	}

	SyncObject(e, entry, body.Rect())
}

func updatePlayerAnimation(player *components.PlayerData, body *components.BodyData, movement dmath.Vec2) {
	walled := body.Collisions.Left || body.Collisions.Right
	falling := body.Vel.Y > cfg.Player.WallSlideMinVY || player.AirTime >= cfg.Player.WallSlideMinAir

	switch {
	case player.Sliding || player.SlideLocked:
		body.SetAction(cfg.AnimSlide)
	case walled && falling && !body.Collisions.Down:
		player.WallSlide = true
		player.AirTime = cfg.Player.JumpAirTime
		body.Vel.Y = math.Min(body.Vel.Y, cfg.Player.WallSlideSpeed)
		// face the wall
		if body.Collisions.Left {
			body.Flip = true
		} else {
			body.Flip = false
		}
		body.SetAction(cfg.AnimWallSlide)
	case player.AirTime > cfg.Player.AirJumpAfter:
		player.WallSlide = false
		body.SetAction(cfg.AnimJump)
	case movement.X != 0:
		player.WallSlide = false
		body.SetAction(cfg.AnimRun)
	default:
		player.WallSlide = false
		body.SetAction(cfg.AnimIdle)
	}
}

// updateDash emits the dash bursts, counts the dash down and applies the
// burst velocity while the counter is above BurstEnd.
func updateDash(e *ecs.ECS, player *components.PlayerData, body *components.BodyData) {
	r := rng(e)
	center := dmath.Vec2{X: body.CenterX(), Y: body.CenterY()}
	burstFrames := 7
	if player.DashParticle == "cherry_blossom_dash" {
		burstFrames = 2
	}

	if d := gamemath.AbsInt(player.Dashing); d == cfg.Dash.Duration || d == cfg.Dash.BurstEnd {
		for i := 0; i < cfg.Dash.BurstParticles; i++ {
			vx, vy := gamemath.Polar(r.Float64()*2*math.Pi, randRange(r, 0.5, 1))
			SpawnParticle(e, player.DashParticle, center, dmath.Vec2{X: vx, Y: vy}, randInt(r, 0, burstFrames))
		}
	}

	player.Dashing = gamemath.StepToward(player.Dashing)

	if gamemath.AbsInt(player.Dashing) > cfg.Dash.BurstEnd {
		dir := 1.0
		if player.Dashing < 0 {
			dir = -1
		}
		body.Vel.X = cfg.Dash.Speed * dir
		if gamemath.AbsInt(player.Dashing) == cfg.Dash.BurstEnd+1 {
			body.Vel.X *= cfg.Dash.EndScale
		}
		SpawnParticle(e, player.DashParticle, center, dmath.Vec2{X: r.Float64() * 3 * dir}, randInt(r, 0, 7))
	}
}

func tickPlayerTimers(player *components.PlayerData) {
	dec := func(v *int) {
		if *v > 0 {
			*v--
		}
	}
	dec(&player.DashCooldown)
	dec(&player.SlideBoost)
	dec(&player.SlideCooldown)
	dec(&player.SmokeCooldown)
	dec(&player.SmokeActive)
	dec(&player.ShootCooldown)
	dec(&player.SpikeGrace)
	if player.RamenTimer > 0 {
		player.RamenTimer--
		if player.RamenTimer == 0 {
			player.DashMultiplier = 1
		}
	}
}

func emitBlessingFlame(e *ecs.ECS, body *components.BodyData) {
	r := rng(e)
	x, y := gamemath.Polar(randRange(r, -0.3, 0.3), randRange(r, 0.5, 1))
	pos := dmath.Vec2{X: body.CenterX() + x, Y: body.CenterY() + y}
	vel := dmath.Vec2{X: randRange(r, -0.05, 0.05), Y: randRange(r, -0.25, -0.15)}
	SpawnParticle(e, "divine_flame", pos, vel, randInt(r, 0, 3))
}
