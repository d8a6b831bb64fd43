package components

import (
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/yohamta/donburi"
)

// EmitterData spawns drifting particles of Type inside Rect.
type EmitterData struct {
	Type string
	Rect gamemath.Rect
}

var Emitter = donburi.NewComponentType[EmitterData]()
