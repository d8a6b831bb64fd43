package config

import "github.com/automoto/kagerun/assets/animations"

// Animation keys shared by the player and enemies
const (
	AnimIdle      = "idle"
	AnimRun       = "run"
	AnimJump      = "jump"
	AnimSlide     = "slide"
	AnimWallSlide = "wall_slide"
)

// PlayerAnimations is the default animation table for playable characters.
var PlayerAnimations = map[string]animations.Def{
	AnimIdle:      {Frames: 4, Duration: 6, Loop: true},
	AnimRun:       {Frames: 8, Duration: 4, Loop: true},
	AnimJump:      {Frames: 1, Duration: 5},
	AnimSlide:     {Frames: 2, Duration: 6, Loop: true},
	AnimWallSlide: {Frames: 2, Duration: 5, Loop: true},
}

// EnemyAnimations maps an enemy type key to its animation table.
var EnemyAnimations = map[string]map[string]animations.Def{
	EnemyGunner: {
		AnimIdle: {Frames: 4, Duration: 6, Loop: true},
		AnimRun:  {Frames: 8, Duration: 4, Loop: true},
	},
	EnemyOni: {
		AnimIdle: {Frames: 4, Duration: 12, Loop: true},
		AnimRun:  {Frames: 8, Duration: 8, Loop: true},
	},
	EnemyYurei: {
		AnimIdle: {Frames: 4, Duration: 12, Loop: true},
		AnimRun:  {Frames: 4, Duration: 8, Loop: true},
	},
}
