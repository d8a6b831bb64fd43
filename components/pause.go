package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuRestart
	MenuMusicVolume
	MenuSFXVolume
	MenuQuit
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	// QuitRequested asks the scene to return to the title screen.
	QuitRequested bool
}

var Pause = donburi.NewComponentType[PauseData]()
