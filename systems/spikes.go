package systems

import (
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/automoto/kagerun/shared/tilemap"
	"github.com/automoto/kagerun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpikes hurts the player on contact with a spike hitbox. Ceiling
// spikes can be slid under. A hit starts a grace period during which spikes
// are ignored.
func UpdateSpikes(e *ecs.ECS) {
	if GetOrCreateSession(e).Dead > 0 {
		return
	}
	pe, ok := playerEntry(e)
	if !ok {
		return
	}
	player := components.Player.Get(pe)
	rect := components.Body.Get(pe).Rect()

	for _, entry := range nearby(pe, 0, tags.ResolvSpike) {
		spike := components.Spike.Get(entry)
		if !rect.Overlaps(spike.Hitbox) {
			continue
		}
		if spike.Ceiling && player.Sliding {
			continue
		}
		if player.SmokeActive > 0 || player.SpikeGrace > 0 {
			return
		}
		HitPlayer(e, pe)
		player.SpikeGrace = cfg.Spikes.Grace
		return
	}
}

// SpikeOrientation reports whether a spike tile at (x, y) hangs from a
// ceiling, which is the case when the tile above it is solid.
func SpikeOrientation(grid *tilemap.Tilemap, x, y float64) bool {
	if grid == nil {
		return false
	}
	return grid.IsSolid(x+cfg.Spikes.Size/2, y+cfg.Spikes.CeilingProbe)
}

// SpikeHitbox returns the thin strip along the sharp edge of a spike tile.
func SpikeHitbox(x, y float64, ceiling bool) gamemath.Rect {
	if ceiling {
		return gamemath.NewRect(x, y, cfg.Spikes.Size, cfg.Spikes.HitboxHeight)
	}
	return gamemath.NewRect(x, y+cfg.Spikes.FloorOffset, cfg.Spikes.Size, cfg.Spikes.HitboxHeight)
}
