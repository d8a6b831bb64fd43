package systems

import (
	"math"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/automoto/kagerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCrumble advances every crumble block. A solid block starts
// crumbling the tick the player stands on it, falls once the crumble timer
// runs out and is gone after falling for a while.
func UpdateCrumble(e *ecs.ECS) {
	if GetOrCreateSession(e).Dead > 0 {
		return
	}

	standing := map[*donburi.Entry]bool{}
	if pe, ok := playerEntry(e); ok {
		feet := components.Body.Get(pe).Rect()
		for _, entry := range nearby(pe, 1, tags.ResolvCrumble) {
			if standsOn(feet, components.Crumble.Get(entry).Rect()) {
				standing[entry] = true
			}
		}
	}

	var blocks []*donburi.Entry
	tags.Crumble.Each(e.World, func(entry *donburi.Entry) {
		blocks = append(blocks, entry)
	})
	for _, entry := range blocks {
		block := components.Crumble.Get(entry)
		if stepCrumble(block, standing[entry]) {
			PlaySFX(e, cfg.SoundCrumble)
		}
		if block.State == components.CrumbleGone {
			RemoveObject(e, entry)
			e.World.Remove(entry.Entity())
			continue
		}
		SyncObject(e, entry, block.Rect())
	}
}

// stepCrumble advances one block and reports whether it started crumbling.
func stepCrumble(block *components.CrumbleData, stoodOn bool) bool {
	switch block.State {
	case components.CrumbleSolid:
		if stoodOn {
			block.State = components.CrumbleCrumbling
			block.Timer = 0
			return true
		}
	case components.CrumbleCrumbling:
		block.Timer++
		if block.Timer >= cfg.Crumble.CrumbleTicks {
			block.State = components.CrumbleFalling
			block.Timer = 0
		}
	case components.CrumbleFalling:
		block.Timer++
		block.VelY += cfg.Crumble.FallGravity
		block.Pos.Y += block.VelY
		if block.Timer >= cfg.Crumble.FallTicks {
			block.State = components.CrumbleGone
		}
	}
	return false
}

// standsOn reports whether feet rest exactly on top of block.
func standsOn(feet, block gamemath.Rect) bool {
	return math.Abs(feet.Bottom()-block.Top()) < 1e-6 && feet.Right() > block.Left() && feet.Left() < block.Right()
}
