package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Crumble = donburi.NewTag().SetName("Crumble")
	Pickup  = donburi.NewTag().SetName("Pickup")
	Spike   = donburi.NewTag().SetName("Spike")
	Emitter = donburi.NewTag().SetName("Emitter")
	// LevelScoped marks entities discarded when a level reloads.
	LevelScoped = donburi.NewTag().SetName("LevelScoped")
)

// Resolv tags for actor overlap queries
const (
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvCrumble = "crumble"
	ResolvPickup  = "pickup"
	ResolvSpike   = "spike"
)
