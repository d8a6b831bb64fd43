// Package tilemap implements the sparse tile grid shared by the game runtime
// and the map tool. It has no dependencies on ebitengine or donburi.
package tilemap

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/kagerun/shared/gamemath"
)

const DefaultTileSize = 16

// Tile types with special meaning to the simulation.
const (
	TypeGrass        = "grass"
	TypeStone        = "stone"
	TypeSand         = "sand"
	TypePagoda       = "pagoda"
	TypeCursedPagoda = "cursed_pagoda"
	TypeHalfTile     = "half_tile"
	TypePlatform     = "platform"
	TypeSpikes       = "spikes"
	TypeSpawners     = "spawners"
	TypePickups      = "pickups"
	TypeCrumble      = "crumble_blocks"
	TypeFlora        = "flora"
)

var (
	SolidTypes = map[string]bool{
		TypeGrass:        true,
		TypeStone:        true,
		TypeSand:         true,
		TypePagoda:       true,
		TypeCursedPagoda: true,
	}
	PlatformTypes = map[string]bool{TypePlatform: true}
	HazardTypes   = map[string]bool{TypeSpikes: true}
	AutotileTypes = map[string]bool{
		TypeGrass:        true,
		TypeStone:        true,
		TypeSand:         true,
		TypePagoda:       true,
		TypeCursedPagoda: true,
	}
)

// neighborOffsets is the 3x3 window around a cell, self included.
var neighborOffsets = [9]GridKey{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {0, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// GridKey addresses one grid cell.
type GridKey struct {
	X, Y int
}

// String formats the key the way map files store it ("x;y").
func (k GridKey) String() string {
	return strconv.Itoa(k.X) + ";" + strconv.Itoa(k.Y)
}

func (k GridKey) Add(o GridKey) GridKey {
	return GridKey{X: k.X + o.X, Y: k.Y + o.Y}
}

// ParseGridKey parses the "x;y" form written by String.
func ParseGridKey(s string) (GridKey, error) {
	xs, ys, ok := strings.Cut(s, ";")
	if !ok {
		return GridKey{}, fmt.Errorf("grid key %q: missing separator", s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return GridKey{}, fmt.Errorf("grid key %q: %w", s, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return GridKey{}, fmt.Errorf("grid key %q: %w", s, err)
	}
	return GridKey{X: x, Y: y}, nil
}

// TileID selects tiles by type and variant.
type TileID struct {
	Type    string
	Variant int
}

// Tile is a single placed tile. Grid tiles keep their cell in Pos, off-grid
// tiles keep pixel coordinates.
type Tile struct {
	Type    string     `json:"type"`
	Variant int        `json:"variant"`
	Pos     [2]float64 `json:"pos"`
	FlipX   bool       `json:"flip_x"`
	FlipY   bool       `json:"flip_y"`
}

func (t Tile) ID() TileID {
	return TileID{Type: t.Type, Variant: t.Variant}
}

// X and Y return the stored position.
func (t Tile) X() float64 { return t.Pos[0] }
func (t Tile) Y() float64 { return t.Pos[1] }

// Tilemap stores grid tiles sparsely and off-grid tiles in insertion order.
// A cell holds at most one tile; the last write wins.
type Tilemap struct {
	TileSize int

	grid    map[GridKey]Tile
	offgrid []Tile
}

func New(tileSize int) *Tilemap {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &Tilemap{
		TileSize: tileSize,
		grid:     make(map[GridKey]Tile),
		offgrid:  make([]Tile, 0),
	}
}

// Reset discards every tile but keeps the tile size.
func (m *Tilemap) Reset() {
	m.grid = make(map[GridKey]Tile)
	m.offgrid = make([]Tile, 0)
}

// Len returns the number of grid tiles.
func (m *Tilemap) Len() int { return len(m.grid) }

// OffgridLen returns the number of off-grid tiles.
func (m *Tilemap) OffgridLen() int { return len(m.offgrid) }

// CellAt converts a pixel position to the containing cell.
func (m *Tilemap) CellAt(x, y float64) GridKey {
	return GridKey{X: gamemath.FloorDiv(x, m.TileSize), Y: gamemath.FloorDiv(y, m.TileSize)}
}

// CellRect returns the pixel rect covered by a cell.
func (m *Tilemap) CellRect(k GridKey) gamemath.Rect {
	ts := float64(m.TileSize)
	return gamemath.NewRect(float64(k.X)*ts, float64(k.Y)*ts, ts, ts)
}

// Get returns the grid tile stored at k.
func (m *Tilemap) Get(k GridKey) (Tile, bool) {
	t, ok := m.grid[k]
	return t, ok
}

// TileAt returns the grid tile containing the pixel position.
func (m *Tilemap) TileAt(x, y float64) (Tile, bool) {
	return m.Get(m.CellAt(x, y))
}

// SolidCheck returns the tile at the pixel position if it is solid.
func (m *Tilemap) SolidCheck(x, y float64) (Tile, bool) {
	t, ok := m.TileAt(x, y)
	if !ok || !SolidTypes[t.Type] {
		return Tile{}, false
	}
	return t, true
}

// IsSolid is SolidCheck without the tile.
func (m *Tilemap) IsSolid(x, y float64) bool {
	_, ok := m.SolidCheck(x, y)
	return ok
}

// IsDangerous reports whether the tile at the pixel position is a hazard.
func (m *Tilemap) IsDangerous(x, y float64) bool {
	t, ok := m.TileAt(x, y)
	return ok && HazardTypes[t.Type]
}

// Neighbors returns the existing tiles in the 3x3 window around the cell
// containing the pixel position.
func (m *Tilemap) Neighbors(x, y float64) []Tile {
	base := m.CellAt(x, y)
	tiles := make([]Tile, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		if t, ok := m.grid[base.Add(off)]; ok {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// CollisionRects returns a tile-sized rect for every solid or half-solid
// neighbor, and for hazard neighbors when includeHazards is set.
func (m *Tilemap) CollisionRects(x, y float64, includeHazards bool) []gamemath.Rect {
	return m.neighborRects(x, y, func(t Tile) bool {
		return SolidTypes[t.Type] || t.Type == TypeHalfTile || (includeHazards && HazardTypes[t.Type])
	})
}

// PlatformRects returns the one-way platform neighbors.
func (m *Tilemap) PlatformRects(x, y float64) []gamemath.Rect {
	return m.neighborRects(x, y, func(t Tile) bool {
		return PlatformTypes[t.Type]
	})
}

func (m *Tilemap) neighborRects(x, y float64, keep func(Tile) bool) []gamemath.Rect {
	base := m.CellAt(x, y)
	var rects []gamemath.Rect
	for _, off := range neighborOffsets {
		k := base.Add(off)
		t, ok := m.grid[k]
		if !ok || !keep(t) {
			continue
		}
		rects = append(rects, m.CellRect(k))
	}
	return rects
}

// Extract returns every tile matching one of ids, with pixel positions.
// Off-grid matches come first in insertion order, then grid matches sorted
// left to right. Matches are removed from the map unless keep is set.
func (m *Tilemap) Extract(ids []TileID, keep bool) []Tile {
	want := make(map[TileID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var matches []Tile
	remaining := m.offgrid[:0:0]
	for _, t := range m.offgrid {
		if want[t.ID()] {
			matches = append(matches, t)
			if !keep {
				continue
			}
		}
		remaining = append(remaining, t)
	}
	m.offgrid = remaining

	ts := float64(m.TileSize)
	for _, k := range m.sortedKeys() {
		t := m.grid[k]
		if !want[t.ID()] {
			continue
		}
		t.Pos = [2]float64{float64(k.X) * ts, float64(k.Y) * ts}
		matches = append(matches, t)
		if !keep {
			delete(m.grid, k)
		}
	}
	return matches
}

// SetTile stores t at k, replacing any previous tile there.
func (m *Tilemap) SetTile(k GridKey, t Tile) {
	t.Pos = [2]float64{float64(k.X), float64(k.Y)}
	m.grid[k] = t
}

// Paint fills a brush x brush square whose top-left cell is k.
func (m *Tilemap) Paint(k GridKey, id TileID, brush int, flipX, flipY bool) {
	if brush < 1 {
		brush = 1
	}
	for dy := 0; dy < brush; dy++ {
		for dx := 0; dx < brush; dx++ {
			m.SetTile(k.Add(GridKey{dx, dy}), Tile{Type: id.Type, Variant: id.Variant, FlipX: flipX, FlipY: flipY})
		}
	}
}

// Erase removes the grid tile at k and reports whether one existed.
func (m *Tilemap) Erase(k GridKey) bool {
	if _, ok := m.grid[k]; !ok {
		return false
	}
	delete(m.grid, k)
	return true
}

// AddOffgrid appends a free-placed tile at a pixel position.
func (m *Tilemap) AddOffgrid(t Tile) {
	m.offgrid = append(m.offgrid, t)
}

// EraseOffgridAt removes every off-grid tile whose tile-sized footprint
// contains the pixel position and returns how many were removed.
func (m *Tilemap) EraseOffgridAt(x, y float64) int {
	ts := float64(m.TileSize)
	removed := 0
	kept := m.offgrid[:0:0]
	for _, t := range m.offgrid {
		if gamemath.NewRect(t.X(), t.Y(), ts, ts).Contains(x, y) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	m.offgrid = kept
	return removed
}

// Tiles returns the grid tiles sorted by cell, left to right then top down.
func (m *Tilemap) Tiles() []Tile {
	keys := m.sortedKeys()
	tiles := make([]Tile, len(keys))
	for i, k := range keys {
		tiles[i] = m.grid[k]
	}
	return tiles
}

// Offgrid returns a copy of the off-grid sequence.
func (m *Tilemap) Offgrid() []Tile {
	out := make([]Tile, len(m.offgrid))
	copy(out, m.offgrid)
	return out
}

// Bounds returns the pixel rect covering every grid tile.
func (m *Tilemap) Bounds() gamemath.Rect {
	if len(m.grid) == 0 {
		return gamemath.Rect{}
	}
	first := true
	var minK, maxK GridKey
	for k := range m.grid {
		if first {
			minK, maxK = k, k
			first = false
			continue
		}
		minK.X, minK.Y = min(minK.X, k.X), min(minK.Y, k.Y)
		maxK.X, maxK.Y = max(maxK.X, k.X), max(maxK.Y, k.Y)
	}
	ts := float64(m.TileSize)
	return gamemath.NewRect(float64(minK.X)*ts, float64(minK.Y)*ts,
		float64(maxK.X-minK.X+1)*ts, float64(maxK.Y-minK.Y+1)*ts)
}

func (m *Tilemap) sortedKeys() []GridKey {
	keys := make([]GridKey, 0, len(m.grid))
	for k := range m.grid {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].X != keys[j].X {
			return keys[i].X < keys[j].X
		}
		return keys[i].Y < keys[j].Y
	})
	return keys
}
