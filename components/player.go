package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Character    string
	Ability      string
	DashParticle string

	// Input for this tick
	MoveX        float64
	SlidePressed bool
	slideHeld    bool

	// Ground and air bookkeeping
	AirTime     int
	Jumps       int
	WasGrounded int // grounded grace, refreshed on landing
	WallSlide   bool
	DropTimer   int

	// Dash counter runs from ±60 toward zero
	Dashing      int
	DashCooldown int

	Sliding       bool
	SlideLocked   bool
	SlideBoost    int
	SlideCooldown int

	SmokeActive   int
	SmokeCooldown int
	ShootCooldown int

	// Buffs
	RamenTimer     int
	DashMultiplier float64
	Shield         bool
	Blessing       bool
	SpikeGrace     int
}

// TakeSlidePress reports a fresh slide press while ready is set, latching
// it until the button is released. A press made while not ready fires once
// ready becomes true.
func (p *PlayerData) TakeSlidePress(ready bool) bool {
	if !p.SlidePressed {
		p.slideHeld = false
		return false
	}
	if p.slideHeld || !ready {
		return false
	}
	p.slideHeld = true
	return true
}

// DashAttacking reports whether the dash counter is inside the contact window.
func (p *PlayerData) DashAttacking(threshold int) bool {
	return p.Dashing >= threshold || p.Dashing <= -threshold
}

var Player = donburi.NewComponentType[PlayerData]()
