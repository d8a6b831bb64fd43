package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/kagerun/config"
)

func TestLevelLoadSnapsCamera(t *testing.T) {
	e := loadTestLevel(t, "  P", "###")
	target, ok := cameraTarget(e)
	assert.True(t, ok)
	assert.Equal(t, target, GetOrCreateCamera(e).Position)
}

func TestSnapCameraWithoutPlayer(t *testing.T) {
	e := newTestECS()
	GetOrCreateCamera(e).Position.X = 40
	SnapCamera(e)
	assert.Zero(t, GetOrCreateCamera(e).Position)
}

func TestUpdateCameraEasesTowardPlayer(t *testing.T) {
	e := loadTestLevel(t, "P", "#")
	camera := GetOrCreateCamera(e)
	start := camera.Position
	movePlayer(e, mustPlayer(t, e), 300, 0)
	target, _ := cameraTarget(e)

	UpdateCamera(e)

	assert.InDelta(t, start.X+(target.X-start.X)/config.Camera.SmoothingX, camera.Position.X, 1e-9)
	assert.Greater(t, camera.Position.X, start.X)
	assert.Less(t, camera.Position.X, target.X)
}

func TestShakeOffset(t *testing.T) {
	e := newTestECS()
	assert.Zero(t, ShakeOffset(e))

	GetOrCreateSession(e).Screenshake = 10
	for i := 0; i < 50; i++ {
		off := ShakeOffset(e)
		assert.LessOrEqual(t, off.X, 5.0)
		assert.GreaterOrEqual(t, off.X, -5.0)
		assert.LessOrEqual(t, off.Y, 5.0)
		assert.GreaterOrEqual(t, off.Y, -5.0)
	}
}

func TestWipeRadius(t *testing.T) {
	assert.Zero(t, WipeRadius(config.Session.TransitionMax))
	assert.Zero(t, WipeRadius(-config.Session.TransitionMax))
	assert.Equal(t, float64(config.Session.TransitionMax)*config.Session.WipeScale, WipeRadius(0))
	assert.Equal(t, WipeRadius(12), WipeRadius(-12))
}
