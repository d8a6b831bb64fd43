package systems

import (
	"math/rand"

	"github.com/automoto/kagerun/components"
	"github.com/automoto/kagerun/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera eases the scroll toward the player, a little ahead
// horizontally and with the player in the lower third of the screen.
func UpdateCamera(e *ecs.ECS) {
	camera := GetOrCreateCamera(e)
	camera.Shake = ShakeOffset(e)
	target, ok := cameraTarget(e)
	if !ok {
		return
	}
	camera.Position.X += (target.X - camera.Position.X) / config.Camera.SmoothingX
	camera.Position.Y += (target.Y - camera.Position.Y) / config.Camera.SmoothingY
}

// SnapCamera moves the camera straight onto the player so a fresh level
// doesn't pan in from the origin.
func SnapCamera(e *ecs.ECS) {
	camera := GetOrCreateCamera(e)
	camera.Position = dmath.Vec2{}
	if target, ok := cameraTarget(e); ok {
		camera.Position = target
	}
}

func cameraTarget(e *ecs.ECS) (dmath.Vec2, bool) {
	entry, ok := playerEntry(e)
	if !ok {
		return dmath.Vec2{}, false
	}
	body := components.Body.Get(entry)
	w := float64(config.C.Width)
	h := float64(config.C.Height)
	return dmath.Vec2{
		X: body.CenterX() - w/2 + config.Camera.LeadX,
		Y: body.CenterY() - h*config.Camera.AnchorY,
	}, true
}

// ShakeOffset returns this frame's random render offset for the current
// screenshake. It draws from the global source so rendering never advances
// the session's random stream.
func ShakeOffset(e *ecs.ECS) dmath.Vec2 {
	session := GetOrCreateSession(e)
	if session.Screenshake <= 0 {
		return dmath.Vec2{}
	}
	s := float64(session.Screenshake)
	return dmath.Vec2{X: rand.Float64()*s - s/2, Y: rand.Float64()*s - s/2}
}
