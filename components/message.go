package components

import (
	cfg "github.com/automoto/kagerun/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// QueuedTip fires once the session timer reaches At (ticks since level load).
type QueuedTip struct {
	Tip cfg.Tip
	At  int
}

// TipsData is a singleton tracking the tip queue and the tip on screen
type TipsData struct {
	Queue     []QueuedTip
	Active    *cfg.Tip
	Remaining int // ticks left for the active tip
	// LevelShown and PickupShown remember which levels already queued
	// their tips this run.
	LevelShown  map[int]bool
	PickupShown map[int]bool
}

var Tips = donburi.NewComponentType[TipsData]()

// BannerData is the level title card faded in and out by a tween sequence
type BannerData struct {
	Text  string
	Alpha float32
	Fade  *gween.Sequence
}

var Banner = donburi.NewComponentType[BannerData]()
