package systems

import (
	"math"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/automoto/kagerun/shared/tilemap"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// MoveBody advances a body one tick against the grid. extra holds
// additional solid rects, such as crumble blocks that have not fallen.
func MoveBody(body *components.BodyData, grid *tilemap.Tilemap, movement dmath.Vec2, ignorePlatforms bool, extra []gamemath.Rect) {
	body.Collisions = components.Collisions{}
	prevBottom := body.Bottom()

	frameX := movement.X + body.Vel.X
	frameY := movement.Y + body.Vel.Y

	body.Pos.X += frameX
	for _, r := range solidsAround(body, grid, extra) {
		rect := body.Rect()
		if !rect.Overlaps(r) {
			continue
		}
		if frameX > 0 {
			body.Pos.X = r.Left() - body.W
			body.Collisions.Right = true
		} else if frameX < 0 {
			body.Pos.X = r.Right()
			body.Collisions.Left = true
		}
	}

	body.Pos.Y += frameY
	for _, r := range solidsAround(body, grid, extra) {
		rect := body.Rect()
		if !rect.Overlaps(r) {
			continue
		}
		if frameY > 0 {
			body.Pos.Y = r.Top() - body.H
			body.Collisions.Down = true
			body.Vel.Y = 0
		} else if frameY < 0 {
			body.Pos.Y = r.Bottom()
			body.Collisions.Up = true
			body.Vel.Y = 0
		}
	}

	if grid != nil && frameY > 0 && !ignorePlatforms {
		for _, r := range grid.PlatformRects(body.Pos.X, body.Pos.Y) {
			if !body.Rect().Overlaps(r) {
				continue
			}
			if prevBottom <= r.Top()+cfg.Physics.PlatformTolerance && body.Bottom() >= r.Top() {
				body.Pos.Y = r.Top() - body.H
				body.Collisions.Down = true
				body.Vel.Y = 0
			}
		}
	}

	// Falling through: ease out of a platform the body is partly inside.
	if grid != nil && ignorePlatforms {
		for _, r := range grid.PlatformRects(body.Pos.X, body.Pos.Y) {
			if !body.Rect().Overlaps(r) {
				continue
			}
			overlap := body.Bottom() - r.Top()
			if overlap > 0 && overlap < body.H/2 {
				body.Pos.Y += math.Max(overlap/2, cfg.Physics.MinNudge)
			}
		}
	}

	body.Vel.Y = math.Min(cfg.Physics.MaxFallSpeed, body.Vel.Y+cfg.Physics.Gravity)

	if body.Anim != nil {
		body.Anim.Update()
	}
}

func solidsAround(body *components.BodyData, grid *tilemap.Tilemap, extra []gamemath.Rect) []gamemath.Rect {
	var rects []gamemath.Rect
	if grid != nil {
		rects = grid.CollisionRects(body.Pos.X, body.Pos.Y, body.SolidHazards)
	}
	if len(extra) == 0 {
		return rects
	}
	rect := body.Rect()
	for _, r := range extra {
		if rect.Overlaps(r) {
			rects = append(rects, r)
		}
	}
	return rects
}

// crumbleSolids collects the rects of crumble blocks bodies still stand on.
func crumbleSolids(e *ecs.ECS) []gamemath.Rect {
	var rects []gamemath.Rect
	for entry := range components.Crumble.Iter(e.World) {
		block := components.Crumble.Get(entry)
		if block.IsSolid() {
			rects = append(rects, block.Rect())
		}
	}
	return rects
}
