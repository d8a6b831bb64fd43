package tilemap

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/kagerun/shared/gamemath"
)

func paintRow(m *Tilemap, typ string, y int, xs ...int) {
	for _, x := range xs {
		m.SetTile(GridKey{x, y}, Tile{Type: typ, Variant: 0})
	}
}

func TestGridKeyRoundTrip(t *testing.T) {
	for _, k := range []GridKey{{0, 0}, {3, -7}, {-12, 40}} {
		parsed, err := ParseGridKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.Equal(t, "3;-7", GridKey{3, -7}.String())

	for _, bad := range []string{"", "3", "a;1", "1;b"} {
		_, err := ParseGridKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestTileAtFloorsNegativeCoordinates(t *testing.T) {
	m := New(16)
	m.SetTile(GridKey{-1, -1}, Tile{Type: TypeStone})
	m.SetTile(GridKey{0, 0}, Tile{Type: TypeSpikes})

	tile, ok := m.TileAt(-0.5, -15.9)
	require.True(t, ok)
	assert.Equal(t, TypeStone, tile.Type)

	_, ok = m.SolidCheck(8, 8)
	assert.False(t, ok)
	assert.True(t, m.IsDangerous(15.9, 0))
	assert.False(t, m.IsDangerous(16, 0))
	assert.True(t, m.IsSolid(-1, -1))
}

func TestNeighborsFixedOrder(t *testing.T) {
	m := New(16)
	m.SetTile(GridKey{1, 1}, Tile{Type: "a"})
	m.SetTile(GridKey{0, 1}, Tile{Type: "b"})
	m.SetTile(GridKey{2, 2}, Tile{Type: "c"})
	m.SetTile(GridKey{4, 4}, Tile{Type: "far"})

	got := m.Neighbors(24, 24)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{got[0].Type, got[1].Type, got[2].Type})
}

func TestCollisionAndPlatformRects(t *testing.T) {
	m := New(16)
	m.SetTile(GridKey{0, 1}, Tile{Type: TypeGrass})
	m.SetTile(GridKey{1, 1}, Tile{Type: TypeHalfTile})
	m.SetTile(GridKey{2, 1}, Tile{Type: TypeSpikes})
	m.SetTile(GridKey{1, 0}, Tile{Type: TypePlatform})
	m.SetTile(GridKey{2, 0}, Tile{Type: TypeFlora, Variant: 1})

	rects := m.CollisionRects(20, 4, false)
	assert.ElementsMatch(t, []gamemath.Rect{
		gamemath.NewRect(0, 16, 16, 16),
		gamemath.NewRect(16, 16, 16, 16),
	}, rects)

	withHazards := m.CollisionRects(20, 4, true)
	assert.Len(t, withHazards, 3)
	assert.Contains(t, withHazards, gamemath.NewRect(32, 16, 16, 16))

	assert.Equal(t, []gamemath.Rect{gamemath.NewRect(16, 0, 16, 16)}, m.PlatformRects(20, 4))
}

func TestExtract(t *testing.T) {
	build := func() *Tilemap {
		m := New(16)
		paintRow(m, TypeGrass, 5, 0, 1, 2, 3)
		m.SetTile(GridKey{1, 4}, Tile{Type: TypeSpawners, Variant: 0})
		m.SetTile(GridKey{3, 4}, Tile{Type: TypeSpawners, Variant: 1})
		m.AddOffgrid(Tile{Type: TypeSpawners, Variant: 1, Pos: [2]float64{100.5, 20}})
		m.AddOffgrid(Tile{Type: "decor", Pos: [2]float64{4, 4}})
		return m
	}

	t.Run("destructive", func(t *testing.T) {
		m := build()
		got := m.Extract([]TileID{{TypeSpawners, 1}}, false)
		require.Len(t, got, 2)
		assert.Equal(t, [2]float64{100.5, 20}, got[0].Pos)
		assert.Equal(t, [2]float64{48, 64}, got[1].Pos)

		assert.Empty(t, m.Extract([]TileID{{TypeSpawners, 1}}, true))
		assert.Equal(t, 5, m.Len())
		assert.Equal(t, 1, m.OffgridLen())
	})

	t.Run("keep", func(t *testing.T) {
		m := build()
		got := m.Extract([]TileID{{TypeSpawners, 0}, {TypeSpawners, 1}, {TypeGrass, 0}}, true)
		assert.Len(t, got, 7)
		assert.Equal(t, 6, m.Len())
		assert.Equal(t, 2, m.OffgridLen())
		stored, _ := m.Get(GridKey{1, 4})
		assert.Equal(t, [2]float64{1, 4}, stored.Pos, "stored grid tiles keep cell positions")
	})
}

func TestAutotile(t *testing.T) {
	m := New(16)
	// 3x3 block of grass plus an isolated stone tile.
	for y := 0; y < 3; y++ {
		paintRow(m, TypeGrass, y, 0, 1, 2)
	}
	m.SetTile(GridKey{10, 10}, Tile{Type: TypeStone, Variant: 4})
	m.SetTile(GridKey{1, 3}, Tile{Type: TypePlatform, Variant: 2})

	m.Autotile()

	want := map[GridKey]int{
		{0, 0}: 0, {1, 0}: 1, {2, 0}: 2,
		{0, 1}: 7, {1, 1}: 8, {2, 1}: 3,
		{0, 2}: 6, {1, 2}: 5, {2, 2}: 4,
		{10, 10}: 4,
		{1, 3}:   2,
	}
	for k, v := range want {
		tile, ok := m.Get(k)
		require.True(t, ok, k.String())
		assert.Equal(t, v, tile.Variant, k.String())
	}

	before := m.Tiles()
	m.Autotile()
	assert.Equal(t, before, m.Tiles())
}

func TestAutotileLeavesUnknownSubsets(t *testing.T) {
	m := New(16)
	// Horizontal line: the middle tile has {left,right} which is not a table key.
	paintRow(m, TypeSand, 0, 0, 1, 2)
	m.SetTile(GridKey{1, 0}, Tile{Type: TypeSand, Variant: 6})
	m.Autotile()
	tile, _ := m.Get(GridKey{1, 0})
	assert.Equal(t, 6, tile.Variant)
}

func TestEditorOps(t *testing.T) {
	m := New(16)
	m.Paint(GridKey{2, 2}, TileID{TypeStone, 3}, 2, true, false)
	assert.Equal(t, 4, m.Len())
	tile, ok := m.Get(GridKey{3, 3})
	require.True(t, ok)
	assert.Equal(t, Tile{Type: TypeStone, Variant: 3, Pos: [2]float64{3, 3}, FlipX: true}, tile)

	m.Paint(GridKey{2, 2}, TileID{TypeGrass, 0}, 0, false, false)
	tile, _ = m.Get(GridKey{2, 2})
	assert.Equal(t, TypeGrass, tile.Type, "last write wins")
	assert.Equal(t, 4, m.Len())

	assert.True(t, m.Erase(GridKey{2, 2}))
	assert.False(t, m.Erase(GridKey{2, 2}))

	m.AddOffgrid(Tile{Type: "decor", Pos: [2]float64{10, 10}})
	m.AddOffgrid(Tile{Type: "decor", Pos: [2]float64{100, 10}})
	assert.Equal(t, 1, m.EraseOffgridAt(12, 20))
	assert.Equal(t, 0, m.EraseOffgridAt(12, 20))
	assert.Equal(t, 1, m.OffgridLen())

	assert.Equal(t, gamemath.NewRect(48, 32, 32, 32), m.Bounds().Offset(16, 0))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := New(16)
	paintRow(m, TypeGrass, 3, -2, -1, 0, 1)
	m.SetTile(GridKey{5, 1}, Tile{Type: TypeSpikes, Variant: 1, FlipY: true})
	m.AddOffgrid(Tile{Type: "decor", Variant: 2, Pos: [2]float64{33.5, 12.25}, FlipX: true})
	m.AddOffgrid(Tile{Type: "decor", Variant: 0, Pos: [2]float64{1, 2}})

	path := filepath.Join(t.TempDir(), "0.json")
	require.NoError(t, m.Save(path))

	loaded := New(8)
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, 16, loaded.TileSize)
	assert.Equal(t, m.Tiles(), loaded.Tiles())
	assert.Equal(t, m.Offgrid(), loaded.Offgrid())
}

func TestEncodeFieldNames(t *testing.T) {
	m := New(16)
	m.SetTile(GridKey{1, 2}, Tile{Type: TypeGrass, Variant: 1})
	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))
	assert.JSONEq(t,
		`{"tilemap":{"1;2":{"type":"grass","variant":1,"pos":[1,2],"flip_x":false,"flip_y":false}},"tile_size":16,"offgrid":[]}`,
		buf.String())
}

func TestLoadFailuresLeaveEmptyMap(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.json"), []byte("  \n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	m := New(16)
	m.SetTile(GridKey{0, 0}, Tile{Type: TypeGrass})

	err := m.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, m.Len())

	m.SetTile(GridKey{0, 0}, Tile{Type: TypeGrass})
	assert.NoError(t, m.Load(filepath.Join(dir, "empty.json")))
	assert.Equal(t, 0, m.Len())

	m.SetTile(GridKey{0, 0}, Tile{Type: TypeGrass})
	err = m.Load(filepath.Join(dir, "bad.json"))
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.OffgridLen())
}

func TestDecodeSkipsBadKeys(t *testing.T) {
	m := New(16)
	doc := `{"tilemap":{"oops":{"type":"grass"},"2;3":{"type":"stone","variant":1,"pos":[9,9]}},"tile_size":16,"offgrid":[]}`
	require.NoError(t, m.Decode(strings.NewReader(doc)))
	require.Equal(t, 1, m.Len())
	tile, ok := m.Get(GridKey{2, 3})
	require.True(t, ok)
	assert.Equal(t, [2]float64{2, 3}, tile.Pos, "the key is the source of truth for cells")
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="2">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="4" columns="2">
  <image source="terrain.png" width="32" height="32"/>
  <tile id="3">
   <properties>
    <property name="type" value="spikes"/>
    <property name="variant" type="int" value="1"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="grass" width="3" height="2">
  <data encoding="csv">
0,0,4,
1,2,0
</data>
 </layer>
 <objectgroup id="2" name="markers">
  <object id="1" name="marker" x="20" y="8" width="16" height="16">
   <properties>
    <property name="type" value="spawners"/>
    <property name="variant" type="int" value="1"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestImportTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/a.tmx": {Data: []byte(testTMX)}}

	m, err := ImportTMX(fsys, "levels/a.tmx")
	require.NoError(t, err)
	assert.Equal(t, 16, m.TileSize)
	assert.Equal(t, 3, m.Len())

	tile, ok := m.Get(GridKey{1, 1})
	require.True(t, ok)
	assert.Equal(t, TileID{TypeGrass, 1}, tile.ID())

	tile, ok = m.Get(GridKey{2, 0})
	require.True(t, ok)
	assert.Equal(t, TileID{TypeSpikes, 1}, tile.ID())

	off := m.Offgrid()
	require.Len(t, off, 1)
	assert.Equal(t, TileID{TypeSpawners, 1}, off[0].ID())
	assert.Equal(t, [2]float64{20, 8}, off[0].Pos)

	maps, names, err := ImportDir(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names)
	assert.Equal(t, 3, maps["a"].Len())

	_, _, err = ImportDir(fsys, "missing")
	assert.Error(t, err)
}
