package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/automoto/kagerun/config"
)

func TestQueueLevelTipsOncePerRun(t *testing.T) {
	e := newTestECS()
	tips, _ := GetOrCreateTips(e)

	QueueLevelTips(e, 0)
	require.Len(t, tips.Queue, len(cfg.Tutorials.Levels[0]))
	QueueLevelTips(e, 0)
	assert.Len(t, tips.Queue, len(cfg.Tutorials.Levels[0]))

	first := cfg.Tutorials.Levels[0][0]
	assert.Equal(t, 0, tips.Queue[0].At)
	assert.Equal(t, secondsToTicks(first.Seconds), tips.Queue[1].At, "tips run back to back")

	QueueLevelTips(e, 99)
	assert.Len(t, tips.Queue, len(cfg.Tutorials.Levels[0]))
}

func TestUpdateTipsShowsOneAtATime(t *testing.T) {
	e := newTestECS()
	tips, _ := GetOrCreateTips(e)
	QueueLevelTips(e, 0)
	list := cfg.Tutorials.Levels[0]

	UpdateTips(e)
	require.NotNil(t, tips.Active)
	assert.Equal(t, list[0].Text, tips.Active.Text)
	assert.Len(t, tips.Queue, len(list)-1)

	for i := 0; i < secondsToTicks(list[0].Seconds); i++ {
		UpdateTips(e)
	}
	assert.Nil(t, tips.Active, "the next tip waits for the level timer")

	GetOrCreateSession(e).Timer = tips.Queue[0].At
	UpdateTips(e)
	require.NotNil(t, tips.Active)
	assert.Equal(t, list[1].Text, tips.Active.Text)
}

func TestShowPickupTipOnlyOnItsLevel(t *testing.T) {
	e := newTestECS()
	tips, _ := GetOrCreateTips(e)
	hint := cfg.Tutorials.PickupTips[cfg.PickupRamen]

	ShowPickupTip(e, hint)
	assert.Empty(t, tips.Queue)

	GetOrCreateSession(e).Level = hint.Level
	ShowPickupTip(e, hint)
	ShowPickupTip(e, hint)
	assert.Len(t, tips.Queue, 1)
}

func TestClearTips(t *testing.T) {
	e := newTestECS()
	tips, _ := GetOrCreateTips(e)
	QueueLevelTips(e, 0)
	UpdateTips(e)

	ClearTips(e)
	assert.Empty(t, tips.Queue)
	assert.Nil(t, tips.Active)
	assert.True(t, tips.LevelShown[0], "shown levels survive a clear")
}

func TestBannerFadesOut(t *testing.T) {
	e := newTestECS()
	_, banner := GetOrCreateTips(e)
	ShowBanner(e, "Stage 2")
	assert.Equal(t, "Stage 2", banner.Text)

	var peak float32
	for i := 0; i < 1000 && banner.Fade != nil; i++ {
		UpdateTips(e)
		peak = max(peak, banner.Alpha)
	}
	assert.Nil(t, banner.Fade)
	assert.Zero(t, banner.Alpha)
	assert.InDelta(t, 1, peak, 1e-6)
}

func TestSecondsToTicks(t *testing.T) {
	assert.Equal(t, 3*cfg.C.TPS, secondsToTicks(3))
	assert.Equal(t, cfg.C.TPS/2, secondsToTicks(0.5))
}
