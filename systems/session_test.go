package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/automoto/kagerun/config"
	"github.com/yohamta/donburi/ecs"
)

func TestSessionTimerRunsWhileEnemiesRemain(t *testing.T) {
	e := loadTestLevel(t, "P G", "###")
	session := GetOrCreateSession(e)
	session.Screenshake = 3

	for i := 0; i < 10; i++ {
		UpdateSession(e)
	}

	assert.Equal(t, 10, session.Timer)
	assert.Equal(t, 10, session.Tick)
	assert.Equal(t, 0, session.Screenshake)
	assert.False(t, session.Cleared)
	assert.Equal(t, cfg.Session.TransitionStart+10, session.Transition)
}

func TestSessionClearRecordsBestTimeAndFinishes(t *testing.T) {
	e := loadTestLevel(t, "P", "#")
	session := GetOrCreateSession(e)
	session.Save = NewSaveData()
	session.Save.BestTimes["0"] = 99
	session.Timer = 60

	UpdateSession(e)
	require.True(t, session.Cleared)
	assert.Equal(t, 1.0, session.Save.BestTimes["0"])

	for i := 0; i < 200 && !session.Finished; i++ {
		UpdateSession(e)
	}
	assert.True(t, session.Finished, "clearing the last level ends the run")
	assert.Equal(t, 1.0, session.Save.BestTimes["0"], "the clear is only recorded once")
}

func TestSessionClearKeepsFasterBestTime(t *testing.T) {
	e := loadTestLevel(t, "P", "#")
	session := GetOrCreateSession(e)
	session.Save = NewSaveData()
	session.Save.BestTimes["0"] = 0.5
	session.Timer = 600

	UpdateSession(e)
	assert.Equal(t, 0.5, session.Save.BestTimes["0"])
}

func TestSessionUnlocksCharacterOnClear(t *testing.T) {
	e := loadTestLevel(t, "P", "#")
	session := GetOrCreateSession(e)
	session.Save = NewSaveData()

	for level, name := range cfg.Characters.UnlockAt {
		session.Level = level
		session.Cleared = false
		completeLevel(e)
		assert.Contains(t, session.Save.UnlockedCharacters, name)
	}

	before := len(session.Save.UnlockedCharacters)
	for level := range cfg.Characters.UnlockAt {
		session.Level = level
		completeLevel(e)
	}
	assert.Len(t, session.Save.UnlockedCharacters, before, "unlocks are not duplicated")
}

func TestSessionDeathReloadsLevel(t *testing.T) {
	e := loadTestLevel(t, "P G", "###")
	session := GetOrCreateSession(e)
	session.Transition = 0
	session.Dead = 1

	for i := 0; i < cfg.Session.DeadWipeStart; i++ {
		UpdateSession(e)
	}
	assert.Positive(t, session.Transition, "the wipe closes once the player has been dead a while")

	for i := cfg.Session.DeadWipeStart; i < cfg.Session.ReloadAfter; i++ {
		UpdateSession(e)
	}
	assert.Equal(t, 0, session.Dead, "the level reloaded")
	assert.Equal(t, cfg.Session.TransitionStart, session.Transition)
}

func TestSessionIgnoresFinishedRun(t *testing.T) {
	e := loadTestLevel(t, "P", "#")
	session := GetOrCreateSession(e)
	session.Finished = true

	UpdateSession(e)
	assert.False(t, session.Cleared)
	assert.Equal(t, 0, session.Timer)
	assert.Equal(t, 1, session.Tick)
}

func TestWithGameplayChecks(t *testing.T) {
	e := newTestECS()
	calls := 0
	system := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	system(e)
	GetOrCreatePause(e).IsPaused = true
	system(e)
	GetOrCreatePause(e).IsPaused = false
	GetOrCreateSession(e).Finished = true
	system(e)

	assert.Equal(t, 1, calls)
}
