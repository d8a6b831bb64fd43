package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/automoto/kagerun/systems/factory"
)

func TestConfigureAmbienceFollowsTheme(t *testing.T) {
	e := newTestECS()
	ConfigureAmbience(e, cfg.Theme{Lanterns: true, Rain: true, Bird: "sparrows"})
	amb := GetOrCreateAmbience(e)

	require.Len(t, amb.Clouds, cfg.Ambience.Clouds)
	for i := 1; i < len(amb.Clouds); i++ {
		assert.LessOrEqual(t, amb.Clouds[i-1].Depth, amb.Clouds[i].Depth, "clouds draw back to front")
	}
	assert.Len(t, amb.Lanterns, cfg.Ambience.Lanterns)
	assert.True(t, amb.RainOn)
	assert.Equal(t, "sparrows", amb.Bird)

	ConfigureAmbience(e, cfg.Theme{})
	assert.Len(t, amb.Clouds, cfg.Ambience.Clouds)
	assert.Empty(t, amb.Lanterns)
	assert.False(t, amb.RainOn)
	assert.Empty(t, amb.Bird)
}

func TestRainStaysAroundPlayer(t *testing.T) {
	e := loadTestLevel(t, "P", "#")
	amb := GetOrCreateAmbience(e)
	amb.RainOn = true
	body := components.Body.Get(mustPlayer(t, e))

	for i := 0; i < 20; i++ {
		UpdateAmbience(e)
	}

	require.Len(t, amb.Rain, cfg.Ambience.RainDrops)
	r := cfg.Ambience.RainRadius
	for _, d := range amb.Rain {
		dx := d.Pos.X - body.CenterX()
		dy := d.Pos.Y - body.CenterY()
		assert.LessOrEqual(t, dx*dx+dy*dy, r*r+1e-6)
	}
}

func TestCloudsDrift(t *testing.T) {
	e := newTestECS()
	ConfigureAmbience(e, cfg.Theme{})
	amb := GetOrCreateAmbience(e)
	x := amb.Clouds[0].Pos.X

	UpdateAmbience(e)
	assert.InDelta(t, x+amb.Clouds[0].Speed, amb.Clouds[0].Pos.X, 1e-9)
}

func TestEmittersDropLeaves(t *testing.T) {
	e := newTestECS()
	rect := gamemath.NewRect(0, 0, 400, 400)
	factory.CreateEmitter(e, "leaf", rect)

	UpdateEmitters(e)

	fx := GetOrCreateEffects(e)
	require.Len(t, fx.Particles, 1, "an emitter larger than the density spawns every tick")
	p := fx.Particles[0]
	assert.Equal(t, "leaf", p.Type)
	assert.True(t, rect.Contains(p.Pos.X, p.Pos.Y))
}
