package components

import (
	"github.com/automoto/kagerun/assets/animations"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Collisions records which sides of a body touched something during the
// last move.
type Collisions struct {
	Up, Down, Left, Right bool
}

// BodyData is a grid-colliding actor: the player, a Gunner or an Oni. A Yurei
// carries one too but never runs grid collision.
type BodyData struct {
	Kind       string
	Pos        math.Vec2
	Vel        math.Vec2
	W, H       float64
	Collisions Collisions
	Flip       bool // facing left

	// SolidHazards makes hazard tiles block the body like solid ground.
	SolidHazards bool

	Action string
	Anim   *animations.Animation
	Anims  map[string]animations.Def
}

// Rect is always derived from Pos and the body size.
func (b *BodyData) Rect() gamemath.Rect {
	return gamemath.NewRect(b.Pos.X, b.Pos.Y, b.W, b.H)
}

func (b *BodyData) CenterX() float64 { return b.Pos.X + b.W/2 }
func (b *BodyData) CenterY() float64 { return b.Pos.Y + b.H/2 }
func (b *BodyData) Bottom() float64  { return b.Pos.Y + b.H }

// Facing is -1 when flipped and 1 otherwise.
func (b *BodyData) Facing() float64 {
	return gamemath.Sign(b.Flip)
}

var Body = donburi.NewComponentType[BodyData]()
