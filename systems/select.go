package systems

import (
	"fmt"
	"log"
	"slices"

	"github.com/automoto/kagerun/archetypes"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/yohamta/donburi/ecs"
)

// InitSelect points the selection at a slot and loads its progress.
func InitSelect(sel *components.SelectData, slot, levelCount int) {
	sel.Slot = slot
	sel.LevelCount = levelCount
	loadSlot(sel)
}

func loadSlot(sel *components.SelectData) {
	sel.Save = LoadSave(sel.Slot)
	sel.Character = sel.Save.Character
	if !slices.Contains(sel.Save.UnlockedCharacters, sel.Character) {
		sel.Character = sel.Save.UnlockedCharacters[0]
	}
	sel.Level = max(0, min(sel.Save.Level, MaxSelectableLevel(sel)))
}

// MaxSelectableLevel is the furthest level the slot has reached, capped to
// the levels that exist.
func MaxSelectableLevel(sel *components.SelectData) int {
	top := 0
	if sel.Save != nil {
		top = sel.Save.MaxUnlockedLevel
	}
	if sel.LevelCount > 0 {
		top = min(top, sel.LevelCount-1)
	}
	return max(0, top)
}

// CycleCharacter steps through the slot's unlocked characters.
func CycleCharacter(sel *components.SelectData, dir int) {
	unlocked := sel.Save.UnlockedCharacters
	if len(unlocked) == 0 {
		return
	}
	i := slices.Index(unlocked, sel.Character)
	if i < 0 {
		sel.Character = unlocked[0]
		return
	}
	sel.Character = unlocked[wrap(i+dir, len(unlocked))]
}

// CycleLevel steps the starting level between 0 and the furthest reached.
func CycleLevel(sel *components.SelectData, dir int) {
	sel.Level = wrap(sel.Level+dir, MaxSelectableLevel(sel)+1)
}

// CycleSlot moves to another save slot and reloads its progress.
func CycleSlot(sel *components.SelectData, dir int) {
	sel.Slot = wrap(sel.Slot+dir, cfg.Session.Slots)
	loadSlot(sel)
}

// ResetSlot erases the selected slot's progress.
func ResetSlot(sel *components.SelectData) {
	if err := DeleteSave(sel.Slot); err != nil {
		log.Printf("Warning: %v", err)
	}
	loadSlot(sel)
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// SlotLabel names the slot and whether it holds progress.
func SlotLabel(sel *components.SelectData) string {
	if HasSave(sel.Slot) {
		return fmt.Sprintf("Slot %d", sel.Slot+1)
	}
	return fmt.Sprintf("Slot %d (new)", sel.Slot+1)
}

// LevelLabel names the starting level and the slot's best time on it.
func LevelLabel(sel *components.SelectData, mapID string) string {
	if best, ok := sel.Save.BestTimes[mapID]; ok {
		return fmt.Sprintf("Stage %d  best %.2f", sel.Level+1, best)
	}
	return fmt.Sprintf("Stage %d", sel.Level+1)
}

// AbilityLabel describes the selected character's ability.
func AbilityLabel(sel *components.SelectData) string {
	switch cfg.CharacterByName(sel.Character).Ability {
	case cfg.AbilityBlowgun:
		return "Blowgun"
	case cfg.AbilitySmokeBomb:
		return "Smoke Bomb"
	}
	return ""
}

// NewUpdateSelect drives the title screen from the keyboard or a gamepad:
// left and right pick the character, up and down the level, confirm starts.
// onChange runs after any change so the widgets can refresh.
func NewUpdateSelect(onStart, onChange func()) ecs.System {
	return func(e *ecs.ECS) {
		sel := GetOrCreateSelect(e)
		input := getOrCreateInput(e)

		changed := true
		switch {
		case GetAction(input, cfg.ActionMenuLeft).JustPressed:
			CycleCharacter(sel, -1)
		case GetAction(input, cfg.ActionMenuRight).JustPressed:
			CycleCharacter(sel, 1)
		case GetAction(input, cfg.ActionMenuUp).JustPressed:
			CycleLevel(sel, 1)
		case GetAction(input, cfg.ActionMenuDown).JustPressed:
			CycleLevel(sel, -1)
		case GetAction(input, cfg.ActionMenuBack).JustPressed:
			CycleSlot(sel, 1)
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			PlaySFX(e, cfg.SoundMenuSelect)
			if onStart != nil {
				onStart()
			}
			return
		default:
			changed = false
		}
		if changed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			if onChange != nil {
				onChange()
			}
		}
	}
}

// GetOrCreateSelect returns the title screen's selection singleton.
func GetOrCreateSelect(e *ecs.ECS) *components.SelectData {
	entry, ok := components.Select.First(e.World)
	if !ok {
		entry = archetypes.Select.Spawn(e)
	}
	return components.Select.Get(entry)
}
