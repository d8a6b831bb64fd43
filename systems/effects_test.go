package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/kagerun/components"
)

func TestSparksSlowAndVanish(t *testing.T) {
	e := newTestECS()
	SpawnSpark(e, dmath.Vec2{}, 0, 0.25)
	fx := GetOrCreateEffects(e)

	UpdateSparks(e)
	require.Len(t, fx.Sparks, 1)
	assert.InDelta(t, 0.25, fx.Sparks[0].Pos.X, 1e-9)
	assert.InDelta(t, 0.15, fx.Sparks[0].Speed, 1e-9)

	UpdateSparks(e)
	UpdateSparks(e)
	assert.Empty(t, fx.Sparks)
}

func TestParticlesExpire(t *testing.T) {
	e := newTestECS()
	SpawnParticle(e, "particle", dmath.Vec2{X: 10}, dmath.Vec2{X: 1, Y: -1}, 0)
	fx := GetOrCreateEffects(e)
	require.Len(t, fx.Particles, 1)

	UpdateParticles(e)
	require.Len(t, fx.Particles, 1)
	assert.Equal(t, dmath.Vec2{X: 11, Y: -1}, fx.Particles[0].Pos)

	for i := 0; i < 100; i++ {
		UpdateParticles(e)
	}
	assert.Empty(t, fx.Particles)
}

func TestUnknownParticleIsDropped(t *testing.T) {
	e := newTestECS()
	SpawnParticle(e, "confetti", dmath.Vec2{}, dmath.Vec2{}, 0)
	assert.Empty(t, GetOrCreateEffects(e).Particles)
}

func TestSparkPoints(t *testing.T) {
	pts := sparkPoints(components.Spark{Pos: dmath.Vec2{X: 10, Y: 10}, Angle: 0, Speed: 2})
	assert.InDelta(t, 16, pts[0].X, 1e-9)
	assert.InDelta(t, 10, pts[0].Y, 1e-9)
	assert.InDelta(t, 4, pts[2].X, 1e-9)
	assert.InDelta(t, 11, pts[1].Y, 1e-9)
}

func TestEffectsResetOnLevelLoad(t *testing.T) {
	e := loadTestLevel(t, "P", "#")
	SpawnSpark(e, dmath.Vec2{}, 0, 1)
	SpawnProjectile(e, components.Projectile{})

	reloadLevel(e)

	fx := GetOrCreateEffects(e)
	assert.Empty(t, fx.Sparks)
	assert.Empty(t, fx.Projectiles)
}
