package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
	Scale       int     `json:"scale"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data store for settings and save slots
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Session.SaveAppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

func slotKey(slot int) string {
	return fmt.Sprintf("save_%d", slot)
}

// NewSaveData returns the progress of a fresh slot.
func NewSaveData() *components.SaveData {
	return &components.SaveData{
		Character:          cfg.Characters.Default,
		UnlockedCharacters: slices.Clone(cfg.Characters.DefaultUnlocked),
		BestTimes:          map[string]float64{},
	}
}

// LoadSave reads a slot's progress. A missing or unreadable slot yields a
// fresh one.
func LoadSave(slot int) *components.SaveData {
	save := NewSaveData()
	if gdataManager == nil {
		return save
	}
	data, err := gdataManager.LoadItem(slotKey(slot))
	if err != nil {
		log.Printf("Warning: Could not load save slot %d: %v", slot, err)
		return save
	}
	if len(data) == 0 {
		return save
	}
	if err := json.Unmarshal(data, save); err != nil {
		log.Printf("Warning: Could not parse save slot %d: %v", slot, err)
		return NewSaveData()
	}
	normalizeSave(save)
	return save
}

// normalizeSave fills fields an older save may lack.
func normalizeSave(save *components.SaveData) {
	if len(save.UnlockedCharacters) == 0 {
		save.UnlockedCharacters = slices.Clone(cfg.Characters.DefaultUnlocked)
	}
	if save.BestTimes == nil {
		save.BestTimes = map[string]float64{}
	}
	if save.Character == "" {
		save.Character = cfg.Characters.Default
	}
}

// WriteSave stores a slot's progress with the current character and level.
// The highest unlocked level never goes down.
func WriteSave(slot int, save *components.SaveData, character string, level int) error {
	save.Character = character
	save.Level = level
	save.MaxUnlockedLevel = max(save.MaxUnlockedLevel, level)
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("failed to encode save slot %d: %w", slot, err)
	}
	if err := gdataManager.SaveItem(slotKey(slot), data); err != nil {
		return fmt.Errorf("failed to write save slot %d: %w", slot, err)
	}
	return nil
}

// HasSave reports whether a slot holds progress.
func HasSave(slot int) bool {
	if gdataManager == nil {
		return false
	}
	return gdataManager.ItemExists(slotKey(slot))
}

// DeleteSave clears a slot.
func DeleteSave(slot int) error {
	if gdataManager == nil || !gdataManager.ItemExists(slotKey(slot)) {
		return nil
	}
	if err := gdataManager.DeleteItem(slotKey(slot)); err != nil {
		return fmt.Errorf("failed to delete save slot %d: %w", slot, err)
	}
	return nil
}

// saveSession writes the session's progress to its slot.
func saveSession(session *components.SessionData) {
	if session.Save == nil {
		return
	}
	if err := WriteSave(session.Slot, session.Save, session.Character, session.Level); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings stores the current volumes and display options.
func SaveCurrentSettings(s *components.SettingsData) {
	err := SaveSettings(&SavedSettings{
		MusicVolume: s.MusicVolume,
		SFXVolume:   s.SFXVolume,
		Muted:       s.Muted,
		Fullscreen:  s.Fullscreen,
		Scale:       s.Scale,
	})
	if err != nil {
		log.Printf("Warning: %v", err)
	}
}

// ApplySavedSettings applies loaded settings to the audio globals and the
// window, and mirrors them into the settings component if one exists.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalMusicVolume = saved.MusicVolume
	globalSFXVolume = saved.SFXVolume
	if saved.Muted {
		globalMusicVolume = 0
		globalSFXVolume = 0
	}

	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen && slices.Contains(cfg.Settings.Scales, saved.Scale) {
		ebiten.SetWindowSize(cfg.C.Width*saved.Scale, cfg.C.Height*saved.Scale)
	}

	if e == nil {
		return
	}
	if entry, ok := components.Settings.First(e.World); ok {
		components.Settings.SetValue(entry, components.SettingsData{
			MusicVolume: saved.MusicVolume,
			SFXVolume:   saved.SFXVolume,
			Muted:       saved.Muted,
			Fullscreen:  saved.Fullscreen,
			Scale:       saved.Scale,
		})
	}
}
