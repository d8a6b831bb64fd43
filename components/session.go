package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// SessionData is the run state shared by every system (singleton).
type SessionData struct {
	Level       int
	MapID       string
	Dead        int // 0 while alive, counts up after death
	Transition  int // negative after a load, positive while leaving
	Timer       int // ticks since the level loaded
	Tick        int
	Screenshake int
	Kills       int
	Cleared     bool // the level's clear has been recorded
	Finished    bool
	Character   string
	Slot        int

	Save *SaveData
	Rand *rand.Rand
}

// Seconds returns the level timer in seconds.
func (s *SessionData) Seconds() float64 {
	return float64(s.Timer) / 60
}

// Shake raises the screenshake to at least amount.
func (s *SessionData) Shake(amount int) {
	s.Screenshake = max(s.Screenshake, amount)
}

// SaveData is the per-slot progress persisted between runs.
type SaveData struct {
	Character          string             `json:"character"`
	Level              int                `json:"level"`
	UnlockedCharacters []string           `json:"unlocked_characters"`
	BestTimes          map[string]float64 `json:"best_times"`
	MaxUnlockedLevel   int                `json:"max_unlocked_level"`
}

var Session = donburi.NewComponentType[SessionData]()
