package components

import (
	"github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/shared/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	Map        *tilemap.Tilemap
	LevelIndex int
	MapID      string   // file stem of the loaded map, used for best times
	MapNames   []string // available map files in level order
	Theme      config.Theme
	Loaded     bool
	// Origin is the world position of the resolv space's top-left corner.
	Origin math.Vec2
}

// LastLevel is the index of the final map.
func (l *LevelData) LastLevel() int {
	return len(l.MapNames) - 1
}

var Level = donburi.NewComponentType[LevelData]()
