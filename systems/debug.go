package systems

import (
	"image/color"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/automoto/kagerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision box overlay.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionDebug).JustPressed {
		cfg.Debug.ShowBoxes = !cfg.Debug.ShowBoxes
	}
}

// DrawDebug outlines every broad-phase object and spike hitbox.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBoxes {
		return
	}
	offset := renderOffset(e)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	view := gamemath.NewRect(offset.X, offset.Y, width, height)

	if space := getSpace(e); space != nil {
		origin := GetOrCreateLevel(e).Origin
		for _, obj := range space.Objects() {
			r := gamemath.NewRect(obj.X+origin.X, obj.Y+origin.Y, obj.W, obj.H)
			if !r.Overlaps(view) {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255}
			} else if obj.HasTags(tags.ResolvCrumble) {
				c = color.RGBA{100, 100, 100, 255}
			}
			outline(screen, r.Offset(-offset.X, -offset.Y), c)
		}
	}

	tags.Spike.Each(e.World, func(entry *donburi.Entry) {
		hitbox := components.Spike.Get(entry).Hitbox
		outline(screen, hitbox.Offset(-offset.X, -offset.Y), cfg.Render.HitboxColor)
	})
}

func outline(screen *ebiten.Image, r gamemath.Rect, c color.RGBA) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
