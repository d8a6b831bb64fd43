package systems

import (
	"math"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups bobs every pickup and applies the ones the player touches.
func UpdatePickups(e *ecs.ECS) {
	var touched []*donburi.Entry
	pe, hasPlayer := playerEntry(e)
	if hasPlayer {
		feet := components.Body.Get(pe).Rect()
		for _, entry := range nearby(pe, 0, tags.ResolvPickup) {
			if feet.Overlaps(components.Pickup.Get(entry).Rect()) {
				touched = append(touched, entry)
			}
		}
	}

	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		p := components.Pickup.Get(entry)
		bobPickup(p)
		SyncObject(e, entry, p.Rect())
	})

	for _, entry := range touched {
		collectPickup(e, pe, entry)
	}
}

func bobPickup(p *components.PickupData) {
	p.Timer++
	amplitude := cfg.Pickups.BobAmplitude
	if p.Bob != nil {
		a, _ := p.Bob.Update(1)
		amplitude = float64(a)
	}
	p.CenterY = p.Spawn.Y + math.Sin(float64(p.Timer)*cfg.Pickups.BobSpeed)*amplitude
}

// collectPickup applies a pickup's buff to the player and removes it.
func collectPickup(e *ecs.ECS, pe, entry *donburi.Entry) {
	player := components.Player.Get(pe)
	kind := components.Pickup.Get(entry).Kind

	switch kind {
	case cfg.PickupRamen:
		player.DashMultiplier = cfg.Abilities.RamenMultiplier
		player.RamenTimer = cfg.Abilities.RamenDuration
		PlaySFX(e, cfg.SoundPickupRamen)
	case cfg.PickupSushi:
		player.Shield = true
		PlaySFX(e, cfg.SoundPickupSushi)
	case cfg.PickupBlessing:
		player.Blessing = true
		PlaySFX(e, cfg.SoundPickupBlessing)
	}

	if hint, ok := cfg.Tutorials.PickupTips[kind]; ok {
		ShowPickupTip(e, hint)
	}

	RemoveObject(e, entry)
	e.World.Remove(entry.Entity())
}
