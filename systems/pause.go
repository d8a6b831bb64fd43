package systems

import (
	"fmt"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	// Toggle pause on ESC or P
	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(e, !pause.IsPaused)
	}
	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuQuit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		selectPauseOption(e, pause)
	}
}

// SetPaused freezes or resumes gameplay, pausing the music with it.
func SetPaused(e *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(e)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	if paused {
		pause.SelectedOption = components.MenuResume
		PauseMusic(e)
		return
	}
	ResumeMusic(e)
}

func selectPauseOption(e *ecs.ECS, pause *components.PauseData) {
	settings := GetOrCreateSettings(e)
	switch pause.SelectedOption {
	case components.MenuResume:
		SetPaused(e, false)
	case components.MenuRestart:
		SetPaused(e, false)
		RestartLevel(e)
	case components.MenuMusicVolume:
		settings.MusicVolume = cfg.NextVolumeStep(settings.MusicVolume)
		SetMusicVolume(e, settings.MusicVolume)
		SaveCurrentSettings(settings)
	case components.MenuSFXVolume:
		settings.SFXVolume = cfg.NextVolumeStep(settings.SFXVolume)
		SetSFXVolume(e, settings.SFXVolume)
		SaveCurrentSettings(settings)
	case components.MenuQuit:
		saveSession(GetOrCreateSession(e))
		RequestQuit(e)
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}
	settings := GetOrCreateSettings(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Menu.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		label := option
		switch components.PauseMenuOption(i) {
		case components.MenuMusicVolume:
			label = fmt.Sprintf("%s %d%%", option, int(settings.MusicVolume*100+0.5))
		case components.MenuSFXVolume:
			label = fmt.Sprintf("%s %d%%", option, int(settings.SFXVolume*100+0.5))
		}

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		x := centerTextX(label, fontFace, width)
		text.Draw(screen, label, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor) //nolint:staticcheck // TODO: migrate to text/v2
	}

	input := getOrCreateInput(e)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-8, cfg.Pause.TextColorNormal) //nolint:staticcheck // TODO: migrate to text/v2
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
