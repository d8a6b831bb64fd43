package components

import (
	"github.com/automoto/kagerun/assets/animations"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type Cloud struct {
	Pos   math.Vec2
	Speed float64
	Depth float64
	Image int
}

type RainDrop struct {
	Pos    math.Vec2
	Depth  float64
	Speed  float64
	Length float64
	Angle  float64
	Color  int
}

type Lantern struct {
	Pos   math.Vec2
	Depth float64
	Phase float64
	Size  int
}

type Sparrow struct {
	Pos           math.Vec2
	BaseY         float64
	Speed         float64
	Depth         float64
	Dir           float64
	BobAmplitude  float64
	BobSpeed      float64
	BobPhase      float64
	Flapping      bool
	GlideTimer    int
	GlideInterval int
	Anim          *animations.Animation
}

// AmbienceData holds the background effects for the current theme (singleton).
type AmbienceData struct {
	Clouds   []Cloud
	Rain     []RainDrop
	Lanterns []Lantern
	Sparrows []Sparrow

	RainOn     bool
	LanternsOn bool
	Bird       string

	SparrowTimer int
	SparrowNext  int
}

var Ambience = donburi.NewComponentType[AmbienceData]()
