package systems

import (
	"log"
	"sync"

	"github.com/automoto/kagerun/assets"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes. Gameplay
// only records requests in AudioData; UpdateAudio turns them into playback,
// so nothing but UpdateAudio touches the audio device.
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalLoopPlayers  = map[cfg.SoundID]*audio.Player{}
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalMusicPaused  bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes every cue at startup so the first play does not
// stall a frame.
func PreloadAllSFX() {
	initGlobalAudio()
	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: could not prepare sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays queued cues and brings music and ambient loops in line
// with what the current level asked for.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()
	a := GetOrCreateAudio(e)

	for _, id := range a.PendingSFX {
		playSFX(id)
	}
	a.PendingSFX = a.PendingSFX[:0]

	if a.MusicKey != globalMusicKey {
		switchMusic(a.MusicKey)
	}
	syncLoops(a.Loops)
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		// missing cues are skipped
		return
	}
	player.SetVolume(sfxVolume(id))
	player.Play()
}

func sfxVolume(id cfg.SoundID) float64 {
	volume := globalSFXVolume
	if mult, ok := cfg.Sound.Volumes[id]; ok {
		volume *= mult / cfg.Audio.DefaultSFXVol
	}
	return min(volume, 1)
}

func switchMusic(key string) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalMusicKey = key
	if key == "" {
		return
	}
	player, err := globalAudioLoader.LoadMusic(key)
	if err != nil {
		log.Printf("Warning: could not start music %q: %v", key, err)
		return
	}
	player.SetVolume(globalMusicVolume)
	if !globalMusicPaused {
		player.Play()
	}
	globalMusicPlayer = player
}

func syncLoops(want map[cfg.SoundID]bool) {
	for id, p := range globalLoopPlayers {
		if !want[id] {
			_ = p.Close()
			delete(globalLoopPlayers, id)
		}
	}
	for id, on := range want {
		if !on || globalLoopPlayers[id] != nil {
			continue
		}
		p, err := globalAudioLoader.LoadLoop(id)
		if err != nil {
			continue
		}
		p.SetVolume(sfxVolume(id))
		if !globalMusicPaused {
			p.Play()
		}
		globalLoopPlayers[id] = p
	}
}

// PlayMusic requests the theme music. Asking for the track already playing
// changes nothing.
func PlayMusic(e *ecs.ECS, key string) {
	GetOrCreateAudio(e).MusicKey = key
}

// SetLoops replaces the set of ambient loops that should be running.
func SetLoops(e *ecs.ECS, loops ...cfg.SoundID) {
	a := GetOrCreateAudio(e)
	a.Loops = make(map[cfg.SoundID]bool, len(loops))
	for _, id := range loops {
		a.Loops[id] = true
	}
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	GetOrCreateAudio(e).MusicKey = ""
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalMusicKey = ""
}

// PauseMusic pauses the current music and ambient loops
func PauseMusic(e *ecs.ECS) {
	globalMusicPaused = true
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
	for _, p := range globalLoopPlayers {
		p.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	globalMusicPaused = false
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
	for _, p := range globalLoopPlayers {
		p.Play()
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	a := GetOrCreateAudio(e)
	a.PendingSFX = append(a.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(e *ecs.ECS, volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	for id, p := range globalLoopPlayers {
		p.SetVolume(sfxVolume(id))
	}
}

func GetMusicVolume() float64 {
	return globalMusicVolume
}

func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
			Loops:      map[cfg.SoundID]bool{},
		})
	}
	return components.Audio.Get(entry)
}
