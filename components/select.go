package components

import "github.com/yohamta/donburi"

// SelectData is the title screen's pending choice of slot, character and
// starting level.
type SelectData struct {
	Slot       int
	Character  string
	Level      int
	LevelCount int
	Save       *SaveData
}

var Select = donburi.NewComponentType[SelectData]()
