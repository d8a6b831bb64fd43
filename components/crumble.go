package components

import (
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CrumbleState int

const (
	CrumbleSolid CrumbleState = iota
	CrumbleCrumbling
	CrumbleFalling
	CrumbleGone
)

type CrumbleData struct {
	Variant int
	Pos     math.Vec2
	Size    float64
	VelY    float64
	Timer   int
	State   CrumbleState
}

// IsSolid reports whether bodies should collide with the block.
func (c *CrumbleData) IsSolid() bool {
	return c.State == CrumbleSolid || c.State == CrumbleCrumbling
}

func (c *CrumbleData) Rect() gamemath.Rect {
	return gamemath.NewRect(c.Pos.X, c.Pos.Y, c.Size, c.Size)
}

var Crumble = donburi.NewComponentType[CrumbleData]()
