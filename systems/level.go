package systems

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"strings"

	"github.com/automoto/kagerun/assets"
	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/automoto/kagerun/shared/tilemap"
	"github.com/automoto/kagerun/systems/factory"
	"github.com/automoto/kagerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// spaceMargin pads the broad-phase space around the map so bodies falling
// off the edges still register.
const spaceMargin = 20 * tilemap.DefaultTileSize

// LoadLevel loads a level from the embedded maps.
func LoadLevel(e *ecs.ECS, index int) error {
	return LoadLevelFS(e, assets.Maps(), index)
}

// LoadLevelFS discards every piece of level state and builds the level at
// index from the map files in fsys. A missing or malformed map still loads
// as an empty level; the error is returned for the caller to report.
func LoadLevelFS(e *ecs.ECS, fsys fs.FS, index int) error {
	level := GetOrCreateLevel(e)
	session := GetOrCreateSession(e)
	if len(level.MapNames) > 0 {
		index = max(0, min(index, level.LastLevel()))
	}

	theme := cfg.Themes.Resolve(index)
	applyTheme(e, level, theme)

	clearLevelEntities(e)

	var loadErr error
	if level.Map == nil {
		level.Map = tilemap.New(tilemap.DefaultTileSize)
	}
	if index < len(level.MapNames) {
		name := level.MapNames[index]
		if err := level.Map.LoadFS(fsys, path.Join(cfg.Session.MapDir, name)); err != nil {
			loadErr = fmt.Errorf("failed to load level %d: %w", index, err)
		}
		level.MapID = MapID(name)
	} else {
		level.Map.Reset()
		level.MapID = fmt.Sprint(index)
		loadErr = fmt.Errorf("failed to load level %d: %w", index, tilemap.ErrNotFound)
	}
	level.LevelIndex = index
	level.Loaded = true

	bounds := level.Map.Bounds()
	factory.CreateSpace(e, gamemath.NewRect(
		bounds.X-spaceMargin, bounds.Y-spaceMargin,
		bounds.W+2*spaceMargin, bounds.H+2*spaceMargin,
	), level.Map.TileSize)

	spawnMarkers(e, level.Map)

	if pe, ok := playerEntry(e); ok {
		SyncObject(e, pe, components.Body.Get(pe).Rect())
	}

	GetOrCreateEffects(e).Reset()
	SnapCamera(e)
	session.Level = index
	session.MapID = level.MapID
	session.Dead = 0
	session.Cleared = false
	session.Transition = cfg.Session.TransitionStart
	session.Timer = 0
	session.Screenshake = 0

	tips, _ := GetOrCreateTips(e)
	ClearTips(e)
	clear(tips.LevelShown)
	clear(tips.PickupShown)
	QueueLevelTips(e, index)
	ShowBanner(e, fmt.Sprintf("Stage %d", index+1))
	return loadErr
}

// MapID is a map file's name without its extension; best times are keyed
// by it.
func MapID(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// applyTheme switches music and ambient loops when the theme changes and
// rebuilds the background effects.
func applyTheme(e *ecs.ECS, level *components.LevelData, theme cfg.Theme) {
	if level.Theme.Name != theme.Name || !level.Loaded {
		PlayMusic(e, theme.Music)
	}
	level.Theme = theme

	var loops []cfg.SoundID
	if theme.Ambience {
		loops = append(loops, cfg.SoundAmbience)
	}
	if theme.Cicada {
		loops = append(loops, cfg.SoundCicada)
	}
	if theme.Rain {
		loops = append(loops, cfg.SoundRain)
	}
	SetLoops(e, loops...)
	if theme.Gong {
		PlaySFX(e, cfg.SoundGong)
	}
	ConfigureAmbience(e, theme)
}

// clearLevelEntities removes every entity tagged LevelScoped.
func clearLevelEntities(e *ecs.ECS) {
	var doomed []*donburi.Entry
	tags.LevelScoped.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		RemoveObject(e, entry)
		e.World.Remove(entry.Entity())
	}
}

// spawnMarkers turns the map's marker tiles into entities. Crumble blocks,
// spawners and pickups are taken out of the map; flora and spikes stay as
// scenery.
func spawnMarkers(e *ecs.ECS, grid *tilemap.Tilemap) {
	for variant := range cfg.Crumble.VariantColors {
		for _, t := range grid.Extract([]tilemap.TileID{{Type: tilemap.TypeCrumble, Variant: variant}}, false) {
			factory.CreateCrumble(e, variant, t.X(), t.Y())
		}
	}

	for _, t := range grid.Extract([]tilemap.TileID{{Type: tilemap.TypeFlora, Variant: 1}}, true) {
		factory.CreateEmitter(e, "leaf", gamemath.NewRect(t.X()+4, t.Y()+4, 23, 13))
	}
	for _, t := range grid.Extract([]tilemap.TileID{{Type: tilemap.TypeFlora, Variant: 2}}, true) {
		factory.CreateEmitter(e, "cherry_blossom", gamemath.NewRect(t.X()+26, t.Y()+10, 23, 13))
	}

	spawners := grid.Extract([]tilemap.TileID{
		{Type: tilemap.TypeSpawners, Variant: 0},
		{Type: tilemap.TypeSpawners, Variant: 1},
		{Type: tilemap.TypeSpawners, Variant: 2},
		{Type: tilemap.TypeSpawners, Variant: 3},
	}, false)
	for _, t := range spawners {
		switch t.Variant {
		case 0:
			placePlayer(e, t.X(), t.Y())
		case 1:
			factory.CreateEnemy(e, cfg.EnemyGunner, t.X(), t.Y(), BehaviorFor(cfg.EnemyGunner))
		case 2:
			factory.CreateEnemy(e, cfg.EnemyOni, t.X(), t.Y(), BehaviorFor(cfg.EnemyOni))
		case 3:
			factory.CreateEnemy(e, cfg.EnemyYurei, t.X(), t.Y(), BehaviorFor(cfg.EnemyYurei))
		}
	}

	pickups := grid.Extract([]tilemap.TileID{
		{Type: tilemap.TypePickups, Variant: 0},
		{Type: tilemap.TypePickups, Variant: 1},
		{Type: tilemap.TypePickups, Variant: 2},
	}, false)
	for _, t := range pickups {
		factory.CreatePickup(e, factory.PickupKinds[t.Variant], t.X(), t.Y())
	}

	spikes := grid.Extract([]tilemap.TileID{
		{Type: tilemap.TypeSpikes, Variant: 0},
		{Type: tilemap.TypeSpikes, Variant: 1},
	}, true)
	for _, t := range spikes {
		ceiling := SpikeOrientation(grid, t.X(), t.Y())
		factory.CreateSpike(e, t.Variant, t.X(), t.Y(), ceiling, SpikeHitbox(t.X(), t.Y(), ceiling))
	}
}

// placePlayer moves the player to a spawner, creating it on first use, and
// clears its buffs.
func placePlayer(e *ecs.ECS, x, y float64) {
	entry, ok := playerEntry(e)
	if !ok {
		entry = factory.CreatePlayer(e, GetOrCreateSession(e).Character, x, y)
	}
	ResetPlayer(entry)
	components.Body.Get(entry).Pos = dmath.Vec2{X: x, Y: y}
}

// DrawLevel renders the grid and off-grid tiles visible through the camera.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	level := GetOrCreateLevel(e)
	if level.Map == nil {
		return
	}
	offset := renderOffset(e)
	ts := float64(level.Map.TileSize)
	view := gamemath.NewRect(offset.X-ts, offset.Y-ts, float64(screen.Bounds().Dx())+2*ts, float64(screen.Bounds().Dy())+2*ts)

	draw := func(t tilemap.Tile, x, y float64) {
		// spike entities draw themselves with their orientation
		if t.Type == tilemap.TypeSpikes || !view.Contains(x, y) {
			return
		}
		img := assets.TileImage(t.Type, t.Variant)
		opts := &ebiten.DrawImageOptions{}
		if t.FlipX {
			opts.GeoM.Scale(-1, 1)
			opts.GeoM.Translate(ts, 0)
		}
		if t.FlipY {
			opts.GeoM.Scale(1, -1)
			opts.GeoM.Translate(0, ts)
		}
		opts.GeoM.Translate(math.Floor(x-offset.X), math.Floor(y-offset.Y))
		screen.DrawImage(img, opts)
	}

	for _, t := range level.Map.Offgrid() {
		draw(t, t.X(), t.Y())
	}
	for _, t := range level.Map.Tiles() {
		draw(t, t.X()*ts, t.Y()*ts)
	}
}
