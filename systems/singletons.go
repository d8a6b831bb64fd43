package systems

import (
	"math/rand"

	"github.com/automoto/kagerun/archetypes"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/systems/factory"
	"github.com/automoto/kagerun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSession returns the singleton Session component, creating if needed.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = archetypes.Session.Spawn(e)
		components.Session.SetValue(entry, components.SessionData{
			Character:  cfg.Characters.Default,
			Transition: cfg.Session.TransitionStart,
			Rand:       rand.New(rand.NewSource(1)),
		})
	}
	s := components.Session.Get(entry)
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(1))
	}
	return s
}

// GetOrCreateEffects returns the particle, spark and projectile pools.
func GetOrCreateEffects(e *ecs.ECS) *components.EffectsData {
	entry, ok := components.Effects.First(e.World)
	if !ok {
		entry = archetypes.Effects.Spawn(e)
	}
	return components.Effects.Get(entry)
}

func GetOrCreateLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		entry = factory.CreateLevel(e, nil)
	}
	return components.Level.Get(entry)
}

func GetOrCreateCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		entry = factory.CreateCamera(e, 0, 0)
	}
	return components.Camera.Get(entry)
}

func GetOrCreateAmbience(e *ecs.ECS) *components.AmbienceData {
	entry, ok := components.Ambience.First(e.World)
	if !ok {
		entry = archetypes.Ambience.Spawn(e)
	}
	return components.Ambience.Get(entry)
}

// GetOrCreateTips returns the tip queue; the banner lives on the same entry.
func GetOrCreateTips(e *ecs.ECS) (*components.TipsData, *components.BannerData) {
	entry, ok := components.Tips.First(e.World)
	if !ok {
		entry = archetypes.Tips.Spawn(e)
		components.Tips.SetValue(entry, components.TipsData{
			LevelShown:  map[int]bool{},
			PickupShown: map[int]bool{},
		})
	}
	return components.Tips.Get(entry), components.Banner.Get(entry)
}

// GetOrCreateSettings returns the settings singleton, seeded from the audio
// volumes already in effect.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			Scale:       cfg.Settings.Scales[0],
		})
	}
	return components.Settings.Get(entry)
}

// getSpace returns the resolv space, or nil before a level is loaded.
func getSpace(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// playerEntry returns the player, if one has been created.
func playerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

func rng(e *ecs.ECS) *rand.Rand {
	return GetOrCreateSession(e).Rand
}

// randRange returns a uniform float in [lo, hi).
func randRange(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// randInt returns a uniform int in [lo, hi].
func randInt(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
