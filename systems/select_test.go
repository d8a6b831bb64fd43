package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
)

func TestInitSelectFreshSlot(t *testing.T) {
	sel := &components.SelectData{}
	InitSelect(sel, 1, 4)

	assert.Equal(t, 1, sel.Slot)
	assert.Equal(t, cfg.Characters.Default, sel.Character)
	assert.Zero(t, sel.Level)
	assert.Equal(t, "Slot 2 (new)", SlotLabel(sel))
}

func TestMaxSelectableLevel(t *testing.T) {
	sel := &components.SelectData{LevelCount: 4, Save: NewSaveData()}
	assert.Zero(t, MaxSelectableLevel(sel))

	sel.Save.MaxUnlockedLevel = 2
	assert.Equal(t, 2, MaxSelectableLevel(sel))

	sel.Save.MaxUnlockedLevel = 10
	assert.Equal(t, 3, MaxSelectableLevel(sel), "capped to the levels that exist")

	assert.Zero(t, MaxSelectableLevel(&components.SelectData{}))
}

func TestCycleLevelWraps(t *testing.T) {
	sel := &components.SelectData{LevelCount: 4, Save: NewSaveData()}
	sel.Save.MaxUnlockedLevel = 2

	CycleLevel(sel, -1)
	assert.Equal(t, 2, sel.Level)
	CycleLevel(sel, 1)
	assert.Equal(t, 0, sel.Level)
	CycleLevel(sel, 1)
	assert.Equal(t, 1, sel.Level)
}

func TestCycleCharacterUnlockedOnly(t *testing.T) {
	sel := &components.SelectData{Save: NewSaveData()}
	sel.Save.UnlockedCharacters = []string{"Ninja Hiro", "Tengu"}
	sel.Character = "Ninja Hiro"

	CycleCharacter(sel, 1)
	assert.Equal(t, "Tengu", sel.Character)
	assert.Equal(t, "Blowgun", AbilityLabel(sel))

	CycleCharacter(sel, 1)
	assert.Equal(t, "Ninja Hiro", sel.Character)
	assert.Equal(t, "Smoke Bomb", AbilityLabel(sel))

	sel.Character = "Knight"
	CycleCharacter(sel, -1)
	assert.Equal(t, "Ninja Hiro", sel.Character, "a locked character resets to the first unlocked")
}

func TestCycleSlotWrapsAndReloads(t *testing.T) {
	sel := &components.SelectData{LevelCount: 4}
	InitSelect(sel, cfg.Session.Slots-1, 4)
	sel.Save.MaxUnlockedLevel = 3
	sel.Level = 3

	CycleSlot(sel, 1)
	assert.Zero(t, sel.Slot)
	assert.Zero(t, sel.Level)
	assert.Zero(t, sel.Save.MaxUnlockedLevel)
}

func TestLevelLabel(t *testing.T) {
	sel := &components.SelectData{Save: NewSaveData(), Level: 0}
	assert.Equal(t, "Stage 1", LevelLabel(sel, "0"))

	sel.Save.BestTimes["0"] = 12.5
	assert.Equal(t, "Stage 1  best 12.50", LevelLabel(sel, "0"))
}

func TestWrap(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{-4, 3, 2},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wrap(tt.i, tt.n), "wrap(%d, %d)", tt.i, tt.n)
	}
}

func TestFinishLines(t *testing.T) {
	session := &components.SessionData{Save: NewSaveData()}
	session.Save.BestTimes["0"] = 10.5
	session.Save.BestTimes["2"] = 3

	lines := finishLines(session, []string{"0.json", "1.json", "2.json"})

	assert.Equal(t, []string{
		"STAGE 1  10.50",
		"STAGE 2  --",
		"STAGE 3  3.00",
		"TOTAL  13.50",
	}, lines)
	assert.Nil(t, finishLines(&components.SessionData{}, []string{"0.json"}))
}

func TestRequestQuit(t *testing.T) {
	e := newTestECS()
	assert.False(t, QuitRequested(e))
	RequestQuit(e)
	assert.True(t, QuitRequested(e))
}

func TestWriteSaveKeepsHighestLevel(t *testing.T) {
	save := NewSaveData()

	assert.NoError(t, WriteSave(0, save, "Tengu", 3))
	assert.Equal(t, 3, save.MaxUnlockedLevel)
	assert.Equal(t, "Tengu", save.Character)

	assert.NoError(t, WriteSave(0, save, "Tengu", 1))
	assert.Equal(t, 1, save.Level)
	assert.Equal(t, 3, save.MaxUnlockedLevel)
}

func TestLoadSaveWithoutStorageIsFresh(t *testing.T) {
	save := LoadSave(0)
	assert.Equal(t, cfg.Characters.Default, save.Character)
	assert.Equal(t, cfg.Characters.DefaultUnlocked, save.UnlockedCharacters)
	assert.Empty(t, save.BestTimes)
	assert.False(t, HasSave(0))
	assert.NoError(t, DeleteSave(0))
}

func TestNormalizeSave(t *testing.T) {
	save := &components.SaveData{}
	normalizeSave(save)
	assert.Equal(t, cfg.Characters.Default, save.Character)
	assert.Equal(t, cfg.Characters.DefaultUnlocked, save.UnlockedCharacters)
	assert.NotNil(t, save.BestTimes)
}

func TestSaveSessionRecordsProgress(t *testing.T) {
	session := &components.SessionData{Character: "Ninja Hana", Level: 2, Save: NewSaveData()}

	saveSession(session)

	assert.Equal(t, "Ninja Hana", session.Save.Character)
	assert.Equal(t, 2, session.Save.Level)
	assert.Equal(t, 2, session.Save.MaxUnlockedLevel)

	assert.NotPanics(t, func() { saveSession(&components.SessionData{}) })
}

func TestSettingsWithoutStorage(t *testing.T) {
	assert.NoError(t, SaveSettings(&SavedSettings{MusicVolume: 0.5}))
	assert.NotPanics(t, func() {
		SaveCurrentSettings(&components.SettingsData{MusicVolume: 0.5, SFXVolume: 0.3})
	})

	saved, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved)
}
