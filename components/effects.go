package components

import (
	"github.com/automoto/kagerun/assets/animations"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Particle is a short-lived animated sprite.
type Particle struct {
	Type string
	Pos  math.Vec2
	Vel  math.Vec2
	Anim *animations.Animation
}

// Spark moves along a fixed angle and slows until it stops.
type Spark struct {
	Pos   math.Vec2
	Angle float64
	Speed float64
}

type ProjectileSource int

const (
	SourcePlayer ProjectileSource = iota
	SourceEnemy
)

type Projectile struct {
	Pos    math.Vec2
	Vel    math.Vec2
	Timer  int
	Source ProjectileSource
	Sprite string
	Damage int
	Flip   bool
}

// EffectsData holds the per-level pools of transient objects (singleton).
type EffectsData struct {
	Particles   []Particle
	Sparks      []Spark
	Projectiles []Projectile
}

func (e *EffectsData) Reset() {
	e.Particles = e.Particles[:0]
	e.Sparks = e.Sparks[:0]
	e.Projectiles = e.Projectiles[:0]
}

var Effects = donburi.NewComponentType[EffectsData]()
