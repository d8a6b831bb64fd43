package components

import "github.com/yohamta/donburi"

// SettingsData stores the player's audio and display preferences (singleton).
type SettingsData struct {
	MusicVolume float64
	SFXVolume   float64
	Muted       bool
	Fullscreen  bool
	Scale       int
}

var Settings = donburi.NewComponentType[SettingsData]()
