package factory

import (
	"github.com/automoto/kagerun/archetypes"
	"github.com/automoto/kagerun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{Position: math.Vec2{X: x, Y: y}})
	return camera
}
