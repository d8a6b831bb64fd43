package components

import (
	cfg "github.com/automoto/kagerun/config"
	"github.com/yohamta/donburi"
)

// AudioData stores per-world audio requests (singleton component). Playback
// itself lives in the audio system.
type AudioData struct {
	PendingSFX []cfg.SoundID
	// Loops lists the ambient loops the current theme wants running.
	Loops    map[cfg.SoundID]bool
	MusicKey string
}

var Audio = donburi.NewComponentType[AudioData]()
