package tilemap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
)

var (
	ErrNotFound  = errors.New("map file not found")
	ErrMalformed = errors.New("malformed map file")
)

// mapFile is the on-disk exchange format shared with the map tool.
type mapFile struct {
	Tilemap  map[string]Tile `json:"tilemap"`
	TileSize int             `json:"tile_size"`
	Offgrid  []Tile          `json:"offgrid"`
}

// Encode writes the map in the exchange format.
func (m *Tilemap) Encode(w io.Writer) error {
	doc := mapFile{
		Tilemap:  make(map[string]Tile, len(m.grid)),
		TileSize: m.TileSize,
		Offgrid:  m.Offgrid(),
	}
	for k, t := range m.grid {
		doc.Tilemap[k.String()] = t
	}
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode map: %w", err)
	}
	return nil
}

// Decode replaces the map contents with the document read from r. Empty input
// leaves an empty map. Malformed input leaves an empty map and returns an
// error wrapping ErrMalformed.
func (m *Tilemap) Decode(r io.Reader) error {
	m.Reset()
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read map: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	var doc mapFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.TileSize > 0 {
		m.TileSize = doc.TileSize
	}
	for key, t := range doc.Tilemap {
		k, err := ParseGridKey(key)
		if err != nil {
			log.Printf("Warning: skipping tile: %v", err)
			continue
		}
		m.SetTile(k, t)
	}
	m.offgrid = append(m.offgrid, doc.Offgrid...)
	return nil
}

// Save writes the map to path.
func (m *Tilemap) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create map file: %w", err)
	}
	if err := m.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close map file: %w", err)
	}
	return nil
}

// Load reads the map at path from the local filesystem.
func (m *Tilemap) Load(path string) error {
	return m.load(path, func() (io.ReadCloser, error) { return os.Open(path) })
}

// LoadFS reads a map from fsys.
func (m *Tilemap) LoadFS(fsys fs.FS, name string) error {
	return m.load(name, func() (io.ReadCloser, error) { return fsys.Open(name) })
}

// load logs every failure and always leaves a usable (possibly empty) map,
// so callers may ignore the returned error.
func (m *Tilemap) load(name string, open func() (io.ReadCloser, error)) error {
	m.Reset()
	f, err := open()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: map file not found: %s", name)
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		log.Printf("Warning: failed to open map %s: %v", name, err)
		return fmt.Errorf("failed to open map %s: %w", name, err)
	}
	defer f.Close()

	if err := m.Decode(f); err != nil {
		log.Printf("Error: failed to load map %s: %v", name, err)
		return err
	}
	return nil
}
