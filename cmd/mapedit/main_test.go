package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/kagerun/shared/tilemap"
)

func writeMap(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "0.json")
	m := tilemap.New(tilemap.DefaultTileSize)
	m.SetTile(tilemap.GridKey{X: 0, Y: 0}, tilemap.Tile{Type: tilemap.TypeStone})
	require.NoError(t, m.Save(path))
	return path
}

func TestPaintThenErase(t *testing.T) {
	path := writeMap(t)
	var out bytes.Buffer

	require.NoError(t, run([]string{"paint", "-type", "grass", "-brush", "2", path, "3", "4"}, &out))
	m, err := loadMap(path)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Len())
	tile, ok := m.Get(tilemap.GridKey{X: 4, Y: 5})
	require.True(t, ok)
	assert.Equal(t, tilemap.TypeGrass, tile.Type)

	out.Reset()
	require.NoError(t, run([]string{"erase", path, "3", "4"}, &out))
	assert.Contains(t, out.String(), "erased 3;4")
	m, err = loadMap(path)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Len())

	out.Reset()
	require.NoError(t, run([]string{"erase", path, "30", "40"}, &out))
	assert.Contains(t, out.String(), "nothing at 30;40")
}

func TestInfoCountsTiles(t *testing.T) {
	path := writeMap(t)
	var out bytes.Buffer
	require.NoError(t, run([]string{"info", path}, &out))
	assert.Contains(t, out.String(), "1 grid tiles")
	assert.Contains(t, out.String(), tilemap.TypeStone)
}

func TestRunRejectsBadArguments(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(nil, &out))
	assert.Error(t, run([]string{"explode"}, &out))
	assert.Error(t, run([]string{"erase", "x.json", "1"}, &out))
	assert.Error(t, run([]string{"paint", "x.json", "a", "1"}, &out))
}
