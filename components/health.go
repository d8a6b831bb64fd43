package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
	// Invuln counts down after a hit; damage is ignored until it reaches 0.
	Invuln       int
	InvulnFrames int
}

var Health = donburi.NewComponentType[HealthData]()
