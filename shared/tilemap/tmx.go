package tilemap

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ImportTMX converts a Tiled map into a Tilemap. Each tile layer is named
// after the tile type it paints and the local tile ID becomes the variant;
// tileset tiles may override both with "type" and "variant" properties.
// Objects become off-grid tiles typed by their "type" property, class, or
// name, in that order.
func ImportTMX(fsys fs.FS, tmxPath string) (*Tilemap, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load TMX %s: %w", tmxPath, err)
	}

	m := New(levelMap.TileWidth)
	for _, layer := range levelMap.Layers {
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				lt := layer.Tiles[y*levelMap.Width+x]
				if lt.IsNil() {
					continue
				}
				t := Tile{
					Type:    layer.Name,
					Variant: int(lt.ID),
					FlipX:   lt.HorizontalFlip,
					FlipY:   lt.VerticalFlip,
				}
				if lt.Tileset != nil {
					if tsTile, err := lt.Tileset.GetTilesetTile(lt.ID); err == nil {
						if typ := tsTile.Properties.GetString("type"); typ != "" {
							t.Type = typ
						}
						if tsTile.Properties.GetString("variant") != "" {
							t.Variant = tsTile.Properties.GetInt("variant")
						}
					}
				}
				m.SetTile(GridKey{X: x, Y: y}, t)
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			typ := o.Properties.GetString("type")
			if typ == "" {
				typ = o.Class
			}
			if typ == "" {
				typ = o.Name
			}
			if typ == "" {
				continue
			}
			y := o.Y
			// Tile objects are anchored at their bottom edge.
			if o.GID != 0 {
				y -= o.Height
			}
			m.AddOffgrid(Tile{
				Type:    typ,
				Variant: o.Properties.GetInt("variant"),
				Pos:     [2]float64{o.X, y},
				FlipX:   o.Properties.GetBool("flip_x"),
				FlipY:   o.Properties.GetBool("flip_y"),
			})
		}
	}
	return m, nil
}

// ImportDir imports every .tmx file in dir and returns them keyed by file
// stem, plus the sorted stems.
func ImportDir(fsys fs.FS, dir string) (map[string]*Tilemap, []string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	maps := make(map[string]*Tilemap, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		m, err := ImportTMX(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(path.Base(p), ".tmx")
		maps[stem] = m
		names = append(names, stem)
	}
	sort.Strings(names)
	return maps, names, nil
}
