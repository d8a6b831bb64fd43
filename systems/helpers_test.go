package systems

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/kagerun/components"
	"github.com/automoto/kagerun/shared/tilemap"
	"github.com/automoto/kagerun/tags"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// asciiTiles maps the characters of a test layout to tiles.
var asciiTiles = map[rune]tilemap.Tile{
	'#': {Type: tilemap.TypeStone},
	'=': {Type: tilemap.TypePlatform},
	'^': {Type: tilemap.TypeSpikes},
	'P': {Type: tilemap.TypeSpawners, Variant: 0},
	'G': {Type: tilemap.TypeSpawners, Variant: 1},
	'O': {Type: tilemap.TypeSpawners, Variant: 2},
	'Y': {Type: tilemap.TypeSpawners, Variant: 3},
	'C': {Type: tilemap.TypeCrumble, Variant: 0},
	'R': {Type: tilemap.TypePickups, Variant: 0},
	'S': {Type: tilemap.TypePickups, Variant: 1},
	'B': {Type: tilemap.TypePickups, Variant: 2},
}

// asciiMap builds a map with one 16px cell per character.
func asciiMap(rows ...string) *tilemap.Tilemap {
	m := tilemap.New(16)
	for y, row := range rows {
		for x, ch := range row {
			if t, ok := asciiTiles[ch]; ok {
				m.SetTile(tilemap.GridKey{X: x, Y: y}, t)
			}
		}
	}
	return m
}

// loadTestLevel loads a single level built from rows.
func loadTestLevel(t *testing.T, rows ...string) *ecs.ECS {
	t.Helper()
	e := newTestECS()
	var buf bytes.Buffer
	require.NoError(t, asciiMap(rows...).Encode(&buf))
	fsys := fstest.MapFS{"maps/0.json": {Data: buf.Bytes()}}
	GetOrCreateLevel(e).MapNames = []string{"0.json"}
	require.NoError(t, LoadLevelFS(e, fsys, 0))
	return e
}

func mustPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := playerEntry(e)
	require.True(t, ok, "level has no player")
	return entry
}

// movePlayer places the player's top-left corner at (x, y) and syncs its
// collision object.
func movePlayer(e *ecs.ECS, entry *donburi.Entry, x, y float64) {
	body := components.Body.Get(entry)
	body.Pos.X = x
	body.Pos.Y = y
	SyncObject(e, entry, body.Rect())
}

func count(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func enemyCount(e *ecs.ECS) int {
	return count(e, tags.Enemy)
}
