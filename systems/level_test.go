package systems

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/tilemap"
	"github.com/automoto/kagerun/tags"
)

func TestLoadLevelSpawnsMarkers(t *testing.T) {
	e := loadTestLevel(t,
		"P  G O Y",
		"########",
		"  C RSB ",
		"   ^    ",
		"########",
	)

	pe := mustPlayer(t, e)
	body := components.Body.Get(pe)
	assert.Equal(t, 0.0, body.Pos.X)
	assert.Equal(t, 0.0, body.Pos.Y)

	assert.Equal(t, 3, enemyCount(e))
	assert.Equal(t, 1, count(e, tags.Crumble))
	assert.Equal(t, 3, count(e, tags.Pickup))
	assert.Equal(t, 1, count(e, tags.Spike))

	level := GetOrCreateLevel(e)
	_, ok := level.Map.Get(tilemap.GridKey{X: 0, Y: 0})
	assert.False(t, ok, "spawners are taken out of the map")
	_, ok = level.Map.Get(tilemap.GridKey{X: 2, Y: 2})
	assert.False(t, ok, "crumble blocks are taken out of the map")
	spike, ok := level.Map.Get(tilemap.GridKey{X: 3, Y: 3})
	require.True(t, ok, "spikes stay as scenery")
	assert.Equal(t, tilemap.TypeSpikes, spike.Type)

	session := GetOrCreateSession(e)
	assert.Equal(t, 0, session.Level)
	assert.Equal(t, "0", session.MapID)
	assert.Equal(t, cfg.Session.TransitionStart, session.Transition)
	assert.Equal(t, 0, session.Timer)
}

func TestLoadLevelReplacesLevelEntities(t *testing.T) {
	e := loadTestLevel(t, "P G", "###")
	pe := mustPlayer(t, e)
	components.Player.Get(pe).Shield = true
	GetOrCreateSession(e).Dead = 12

	require.NoError(t, LoadLevelFS(e, fstest.MapFS{"maps/0.json": {Data: encodeMap(t, "  P", "###")}}, 0))

	again := mustPlayer(t, e)
	assert.Equal(t, pe.Entity(), again.Entity(), "the player survives a reload")
	assert.False(t, components.Player.Get(again).Shield, "buffs are cleared")
	assert.Equal(t, 32.0, components.Body.Get(again).Pos.X)
	assert.Equal(t, 0, enemyCount(e))
	assert.Equal(t, 0, GetOrCreateSession(e).Dead)

	obj := components.Object.Get(again)
	assert.Same(t, getSpace(e), obj.Space, "the player's object moves to the new space")
}

func TestLoadLevelMissingMapStillLoads(t *testing.T) {
	e := newTestECS()
	GetOrCreateLevel(e).MapNames = []string{"0.json"}

	err := LoadLevelFS(e, fstest.MapFS{}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, tilemap.ErrNotFound)

	level := GetOrCreateLevel(e)
	assert.True(t, level.Loaded)
	assert.Equal(t, 0, level.Map.Len())
	assert.NotNil(t, getSpace(e))
}

func TestLoadLevelClampsIndex(t *testing.T) {
	e := newTestECS()
	GetOrCreateLevel(e).MapNames = []string{"0.json"}
	fsys := fstest.MapFS{"maps/0.json": {Data: encodeMap(t, "P", "#")}}

	require.NoError(t, LoadLevelFS(e, fsys, 7))
	assert.Equal(t, 0, GetOrCreateSession(e).Level)
}

func TestLoadLevelQueuesTipsAndBanner(t *testing.T) {
	e := loadTestLevel(t, "P", "#")
	tips, banner := GetOrCreateTips(e)
	assert.Len(t, tips.Queue, len(cfg.Tutorials.Levels[0]))
	assert.Equal(t, "Stage 1", banner.Text)
	assert.NotNil(t, banner.Fade)
}

func TestMapID(t *testing.T) {
	assert.Equal(t, "12", MapID("12.json"))
	assert.Equal(t, "bonus", MapID("bonus.json"))
}

func encodeMap(t *testing.T, rows ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, asciiMap(rows...).Encode(&buf))
	return buf.Bytes()
}
