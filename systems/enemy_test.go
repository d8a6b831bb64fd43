package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/tags"
)

func firstEnemy(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Enemy.First(e.World)
	require.True(t, ok, "level has no enemy")
	return entry
}

func TestBehaviorFor(t *testing.T) {
	assert.IsType(t, Gunner{}, BehaviorFor(cfg.EnemyGunner))
	assert.IsType(t, Oni{}, BehaviorFor(cfg.EnemyOni))
	assert.IsType(t, Yurei{}, BehaviorFor(cfg.EnemyYurei))
	assert.IsType(t, Gunner{}, BehaviorFor("unknown"))
}

func TestDartKillsGunner(t *testing.T) {
	e := loadTestLevel(t, "P G", "###")
	gunner := firstEnemy(t, e)
	body := components.Body.Get(gunner)

	SpawnProjectile(e, components.Projectile{
		Pos:    dmath.Vec2{X: body.Pos.X - 2, Y: body.CenterY()},
		Vel:    dmath.Vec2{X: 3},
		Source: components.SourcePlayer,
		Damage: 1,
	})
	UpdateProjectiles(e)

	assert.Zero(t, enemyCount(e))
	assert.Empty(t, GetOrCreateEffects(e).Projectiles)
	assert.Equal(t, 1, GetOrCreateSession(e).Kills)
	assert.Equal(t, cfg.Enemies.HitShake, GetOrCreateSession(e).Screenshake)
}

func TestDashKillsGunner(t *testing.T) {
	e := loadTestLevel(t, "P G", "###")
	gunner := firstEnemy(t, e)
	pe := mustPlayer(t, e)
	gb := components.Body.Get(gunner)
	movePlayer(e, pe, gb.Pos.X, gb.Pos.Y)
	components.Player.Get(pe).Dashing = cfg.Dash.Duration

	UpdateEnemies(e)

	assert.Zero(t, enemyCount(e))
	assert.Equal(t, 1, GetOrCreateSession(e).Kills)
}

func TestUpdateEnemiesNeedsPlayer(t *testing.T) {
	e := loadTestLevel(t, "  G", "###")
	UpdateEnemies(e)
	assert.Zero(t, components.Enemy.Get(firstEnemy(t, e)).Age)
}

func TestOniInvulnerability(t *testing.T) {
	e := loadTestLevel(t, "P O", "###")
	oni := firstEnemy(t, e)
	health := components.Health.Get(oni)
	require.Equal(t, 5, health.Current)

	assert.False(t, Oni{}.TakeDamage(e, oni, 1))
	assert.False(t, Oni{}.TakeDamage(e, oni, 1), "hits during invulnerability are ignored")
	assert.Equal(t, 4, health.Current)
	assert.Equal(t, cfg.Enemies.Types[cfg.EnemyOni].InvulnFrames, health.Invuln)

	for i := 0; i < health.InvulnFrames; i++ {
		tickInvuln(oni)
	}
	assert.False(t, Oni{}.TakeDamage(e, oni, 1))
	assert.Equal(t, 3, health.Current)

	health.Invuln = 0
	assert.True(t, Oni{}.TakeDamage(e, oni, 3), "damage to zero is lethal")
}

func TestOniFiresVolleyBothWays(t *testing.T) {
	e := loadTestLevel(t, "P  O", "####")
	oni := firstEnemy(t, e)
	enemy := components.Enemy.Get(oni)
	enemy.ShootTimer = enemy.TypeConfig.ShootInterval - 1

	UpdateEnemies(e)

	shots := GetOrCreateEffects(e).Projectiles
	require.Len(t, shots, 2)
	assert.Equal(t, components.SourceEnemy, shots[0].Source)
	assert.Negative(t, shots[0].Vel.X)
	assert.Positive(t, shots[1].Vel.X)
	assert.True(t, enemy.Enraged)
	assert.Zero(t, enemy.ShootTimer)
}

func TestYureiNeedsBlessing(t *testing.T) {
	e := loadTestLevel(t, "P Y", "###")
	yurei := firstEnemy(t, e)
	health := components.Health.Get(yurei)
	player := components.Player.Get(mustPlayer(t, e))

	assert.False(t, Yurei{}.TakeDamage(e, yurei, 1))
	assert.Equal(t, 3, health.Current)

	player.Blessing = true
	assert.False(t, Yurei{}.TakeDamage(e, yurei, 1))
	assert.Equal(t, 2, health.Current)

	assert.True(t, Yurei{}.Die(e, yurei))
	assert.False(t, player.Blessing, "killing a yurei spends the blessing")
}

func TestYureiTouch(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*components.PlayerData)
		wantDead bool
	}{
		{name: "kills", setup: func(*components.PlayerData) {}, wantDead: true},
		{name: "smoke protects", setup: func(p *components.PlayerData) { p.SmokeActive = 10 }},
		{name: "dash protects", setup: func(p *components.PlayerData) { p.Dashing = cfg.Dash.Duration }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := loadTestLevel(t, "P Y", "###")
			pe := mustPlayer(t, e)
			tt.setup(components.Player.Get(pe))

			Yurei{}.touchPlayer(e, pe)

			assert.Equal(t, tt.wantDead, GetOrCreateSession(e).Dead > 0)
		})
	}
}

func TestEnemyShotAgainstPlayer(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*components.PlayerData)
		wantDead   bool
		wantShield bool
		wantKept   bool
	}{
		{name: "kills", setup: func(*components.PlayerData) {}, wantDead: true},
		{name: "shield absorbs", setup: func(p *components.PlayerData) { p.Shield = true }},
		{name: "smoke lets it pass", setup: func(p *components.PlayerData) { p.SmokeActive = 10 }, wantKept: true},
		{name: "dash passes through", setup: func(p *components.PlayerData) { p.Dashing = -cfg.Dash.Duration }, wantKept: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := loadTestLevel(t, "P", "#")
			pe := mustPlayer(t, e)
			player := components.Player.Get(pe)
			tt.setup(player)
			body := components.Body.Get(pe)

			SpawnProjectile(e, components.Projectile{
				Pos:    dmath.Vec2{X: body.CenterX() - 1, Y: body.CenterY()},
				Vel:    dmath.Vec2{X: 1},
				Source: components.SourceEnemy,
				Damage: 1,
			})
			UpdateProjectiles(e)

			assert.Equal(t, tt.wantDead, GetOrCreateSession(e).Dead > 0)
			assert.Equal(t, tt.wantShield, player.Shield)
			assert.Equal(t, tt.wantKept, len(GetOrCreateEffects(e).Projectiles) == 1)
		})
	}
}

func TestProjectileHitsWall(t *testing.T) {
	e := loadTestLevel(t, "P  #", "####")
	SpawnProjectile(e, components.Projectile{
		Pos:    dmath.Vec2{X: 46, Y: 8},
		Vel:    dmath.Vec2{X: 3},
		Source: components.SourceEnemy,
	})

	UpdateProjectiles(e)

	assert.Empty(t, GetOrCreateEffects(e).Projectiles)
	assert.Len(t, GetOrCreateEffects(e).Sparks, cfg.Effects.ImpactSparks)
}

func TestProjectileExpires(t *testing.T) {
	e := loadTestLevel(t, "P")
	SpawnProjectile(e, components.Projectile{Pos: dmath.Vec2{X: 200, Y: -200}, Source: components.SourceEnemy})

	for i := 0; i < cfg.Effects.ProjectileLife; i++ {
		UpdateProjectiles(e)
	}
	assert.Len(t, GetOrCreateEffects(e).Projectiles, 1)

	UpdateProjectiles(e)
	assert.Empty(t, GetOrCreateEffects(e).Projectiles)
}

func TestIsSafeAhead(t *testing.T) {
	grid := asciiMap(
		"  ^ ",
		"####",
	)
	body := testBody(4, 1)
	assert.True(t, isSafeAhead(grid, body), "solid floor ahead")

	body.Pos.X = 28
	assert.False(t, isSafeAhead(grid, body), "spikes ahead")

	body.Pos.X = 60
	assert.False(t, isSafeAhead(grid, body), "ledge ahead")

	assert.False(t, isSafeAhead(nil, body))
}

func TestGunnerTurnsAtLedge(t *testing.T) {
	e := loadTestLevel(t,
		"P   G  ",
		"#  ####",
	)
	require.Equal(t, 1, count(e, tags.Player))
	require.Equal(t, 1, enemyCount(e))

	entry := firstEnemy(t, e)
	enemy := components.Enemy.Get(entry)
	body := components.Body.Get(entry)
	enemy.Walking = 1000
	require.False(t, body.Flip)

	for i := 0; i < 20 && !body.Collisions.Down; i++ {
		UpdateEnemies(e)
	}
	require.True(t, body.Collisions.Down, "gunner never landed")
	floorY := body.Pos.Y

	turns := 0
	lastFlip := body.Flip
	for i := 0; i < 300 && turns < 2; i++ {
		UpdateEnemies(e)
		require.True(t, body.Collisions.Down, "gunner left the floor at tick %d", i)
		require.Equal(t, floorY, body.Pos.Y)
		require.GreaterOrEqual(t, body.Pos.X, 48.0)
		require.LessOrEqual(t, body.Pos.X+body.W, 112.0)
		if body.Flip != lastFlip {
			turns++
			lastFlip = body.Flip
		}
	}
	assert.Equal(t, 2, turns, "gunner turns at both ends of the floor")
	assert.Equal(t, 1, enemyCount(e))
}
